package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/notify"
	"github.com/sirupsen/logrus"
)

const NotificationReportShared = "report.shared"

// ShareWorker delivers report.share jobs. Delivery to the platforms is a
// log line; the requesting manager is notified once it is done.
type ShareWorker struct {
	notifier notify.Notifier
}

func NewShareWorker(notifier notify.Notifier) *ShareWorker {
	return &ShareWorker{notifier: notifier}
}

func (w *ShareWorker) Handle(ctx context.Context, body []byte) error {
	var job ShareJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("decode share job: %w", err)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"candidate_id": job.CandidateID,
		"platform":     job.Platform,
		"status":       job.Report.RecommendationStatus,
		"rating":       job.Report.Rating,
	}).Info("[REPORT] Report delivered")

	if w.notifier == nil {
		return nil
	}
	return w.notifier.Notify(ctx, job.RequestedBy, notify.Notification{
		Type:        NotificationReportShared,
		Title:       "Report Sent",
		Description: fmt.Sprintf("%s's report sent to %s successfully.", job.CandidateName, job.Platform.Label()),
		Variant:     notify.VariantDefault,
		Data: map[string]any{
			"candidate_id": job.CandidateID,
			"platform":     job.Platform,
		},
	})
}
