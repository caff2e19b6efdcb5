package donation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"foodloop/domain"
	"foodloop/internal/metrics"
	"foodloop/internal/utils/mailing"
	"foodloop/internal/utils/storage"
	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
	"html/template"
	"strings"
)

// Notifier is told about every persisted donation. It must not fail the
// donation: problems are logged and dropped.
type Notifier interface {
	DonationRecorded(ctx context.Context, donation *domain.Donation)
}

type receiptNotifier struct {
	s3      storage.AwsS3
	mailer  mailing.Mailer
	toEmail string
	appURL  string
}

type receiptMailData struct {
	*domain.Donation
	AppURL string
}

var receiptMail = template.Must(template.New("receipt").Parse(`<h2>Donation to {{.FoodBank}}</h2>
<p>Donated on {{.DonatedAt.Format "Jan 02, 2006 15:04"}}</p>
<ul>
{{range .Items}}<li>{{.Item}}: {{.Quantity}} {{.Unit}} (expires {{.ExpiryDate.Format "Jan 02, 2006"}}, {{.Status}})</li>
{{end}}</ul>
{{if .ReceiptURL}}<p><a href="{{.ReceiptURL}}">Receipt</a></p>{{end}}
{{if .AppURL}}<p><a href="{{.AppURL}}/donate">Open FoodLoop</a></p>{{end}}`))

// NewReceiptNotifier uploads a JSON receipt when s3 is set and mails a
// summary to toEmail when mailer is set. Either may be nil. appURL links
// the mail back to the donation page.
func NewReceiptNotifier(s3 storage.AwsS3, mailer mailing.Mailer, toEmail, appURL string) Notifier {
	return &receiptNotifier{
		s3:      s3,
		mailer:  mailer,
		toEmail: toEmail,
		appURL:  strings.TrimSuffix(appURL, "/"),
	}
}

func (n *receiptNotifier) DonationRecorded(ctx context.Context, donation *domain.Donation) {
	if n.s3 != nil {
		link, err := n.uploadReceipt(ctx, donation)
		metrics.NotificationSent.With(channelLabels("s3", err)).Inc()
		if err != nil {
			log.Errorf("donation %s: receipt upload failed: %v", donation.ID, err)
		} else {
			donation.ReceiptURL = link
		}
	}

	if n.mailer != nil && n.toEmail != "" {
		err := n.sendMail(donation)
		metrics.NotificationSent.With(channelLabels("mail", err)).Inc()
		if err != nil {
			log.Errorf("donation %s: mail failed: %v", donation.ID, err)
		}
	}
}

func (n *receiptNotifier) uploadReceipt(ctx context.Context, donation *domain.Donation) (string, error) {
	body, err := json.MarshalIndent(donation, "", "  ")
	if err != nil {
		return "", err
	}
	objectKey, err := n.s3.UploadFile(ctx, fmt.Sprintf("donations/%s.json", donation.ID), body, "application/json")
	if err != nil {
		return "", err
	}
	return n.s3.GetPublicLinkKey(objectKey), nil
}

func (n *receiptNotifier) sendMail(donation *domain.Donation) error {
	var body bytes.Buffer
	if err := receiptMail.Execute(&body, receiptMailData{Donation: donation, AppURL: n.appURL}); err != nil {
		return err
	}
	subject := fmt.Sprintf("Donation to %s: %d item(s)", donation.FoodBank, len(donation.Items))
	return n.mailer.SendMail(n.toEmail, subject, body.String())
}

func channelLabels(channel string, err error) prometheus.Labels {
	labels := metrics.Result(err)
	labels["channel"] = channel
	return labels
}
