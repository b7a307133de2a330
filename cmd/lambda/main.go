package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/container"
	"github.com/saulo-duarte/neurobridge-lambda/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	// Lambda freezes the process between invocations, so in-process jobs run
	// inline. With RabbitMQ configured the jobs belong to cmd/worker.
	c := container.New(container.WithInlineJobs())
	if c.InProcessJobs() {
		if err := c.StartWorkers(context.Background()); err != nil {
			config.Logger.WithError(err).Fatal("failed to start workers")
		}
	}
	adapter = httpadapter.New(router.New(c.Router()))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
