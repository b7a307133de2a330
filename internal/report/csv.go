package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	util "github.com/saulo-duarte/neurobridge-lambda/internal/utils"
)

var csvHeader = []string{"Name", "Email", "Phone", "Position", "Experience", "Skills", "Rating", "Status", "Remarks"}

// Filename is the download name for an export produced at now.
func Filename(now time.Time) string {
	return "candidate-reports-" + util.DateStamp(now) + ".csv"
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(f)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// WriteCSV writes every field double-quoted, with embedded quotes doubled.
func WriteCSV(out io.Writer, reports []Report) error {
	w := bufio.NewWriter(out)
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.Name(),
			r.Email,
			r.Phone,
			r.CurrentPosition,
			fmt.Sprintf("%d years", r.ExperienceYears),
			strings.Join(r.Skills, "; "),
			strconv.Itoa(r.Rating),
			string(r.RecommendationStatus),
			r.Remarks,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return w.Flush()
}
