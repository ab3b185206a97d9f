// Package notify renders and delivers room alert emails.
package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// emailData feeds the alert email template.
type emailData struct {
	ResortName        string
	StoreLabel        string
	RoomCategory      string
	BestPrice         int
	HasDiscount       bool
	OfferName         string
	OfferDetail       string
	CheckIn           string
	CheckOut          string
	ClientName        string
	ReservationNumber string
}

// Subject builds the email subject for an alert.
func Subject(a *alert.Alert) string {
	resortName := catalog.DisplayName(a.ResortSlug)
	if r, ok := catalog.Lookup(a.ResortSlug); ok && r.Store == catalog.StoreDLR {
		return fmt.Sprintf("🏰 DLR Room Alert: %s", resortName)
	}
	return fmt.Sprintf("🏰 WDW Room Alert: %s", resortName)
}

// RenderEmail produces the HTML body for an alert's deduplicated matches.
// The headline rate is the discounted match when one exists, otherwise the
// first match.
func RenderEmail(a *alert.Alert, matches []scraper.Match) (string, error) {
	if len(matches) == 0 {
		return "", fmt.Errorf("no matches to render")
	}

	best := matches[0]
	for _, m := range matches {
		if m.Discounted() {
			best = m
			break
		}
	}

	data := emailData{
		ResortName:   catalog.DisplayName(a.ResortSlug),
		StoreLabel:   "Walt Disney World",
		RoomCategory: a.RoomCategory,
		BestPrice:    best.Price,
		HasDiscount:  best.Discounted(),
		OfferName:    best.OfferName,
		OfferDetail:  best.OfferDetail,
		CheckIn:      formatDate(a.CheckInDate),
		CheckOut:     formatDate(a.CheckOutDate),
		ClientName:   a.ClientName,
	}
	if r, ok := catalog.Lookup(a.ResortSlug); ok && r.Store == catalog.StoreDLR {
		data.StoreLabel = "Disneyland Resort"
	}
	if a.ReservationNumber != nil {
		data.ReservationNumber = *a.ReservationNumber
	}

	var buf strings.Builder
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render alert email: %w", err)
	}
	return buf.String(), nil
}

// renderPlainText is the text/plain alternative part.
func renderPlainText(a *alert.Alert, matches []scraper.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room Finder Alert: %s\n", catalog.DisplayName(a.ResortSlug))
	fmt.Fprintf(&b, "%s, %s to %s\n\n", a.RoomCategory, formatDate(a.CheckInDate), formatDate(a.CheckOutDate))
	for _, m := range matches {
		if m.Discounted() {
			fmt.Fprintf(&b, "- %s: $%d/night (%s)\n", m.RoomCategory, m.Price, m.OfferName)
		} else {
			fmt.Fprintf(&b, "- %s: $%d/night\n", m.RoomCategory, m.Price)
		}
	}
	return b.String()
}

// formatDate renders a calendar date the way the dashboard shows it.
func formatDate(t time.Time) string {
	return t.Format("01-02-2006")
}

var emailTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="light dark">
  <meta name="supported-color-schemes" content="light dark">
</head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <!-- Header -->
    <div style="background:#12202D;padding:30px;text-align:center;">
      <img src="http://cdn.mcauto-images-production.sendgrid.net/bde4f566d6ba3b93/edb013f5-7136-417c-abf0-60ea49ab3464/600x300.png"
           alt="Mouse Agents" width="150" height="75"
           style="width:150px;height:75px;display:block;margin:0 auto 5px;">
      <h1 style="color:#fff;margin:0;font-size:28px;">Room Finder Alert</h1>
      <p style="color:#1BC5D4;margin:5px 0 0 0;font-size:14px;">{{.StoreLabel}}</p>
    </div>

    <div style="padding:20px;">
      <!-- Resort Info Card -->
      <div style="border:3px solid #1BC5D4;padding:25px;text-align:center;margin-bottom:20px;">
        <h2 style="color:#1BC5D4;margin:0 0 10px 0;">{{.ResortName}}</h2>
        <h3 style="margin:0 0 10px 0;">{{.RoomCategory}}</h3>
        <div style="background:#1BC5D4;color:#fff;display:inline-block;padding:10px 20px;border-radius:25px;font-size:20px;margin-bottom:8px;">${{.BestPrice}}/night</div>
        {{if .HasDiscount}}<div style="color:#10b981;font-size:14px;margin-top:8px;">✨ Discounted Rate!</div>{{end}}
      </div>

      {{if .HasDiscount}}
      <div style="margin-bottom:20px;padding:15px;background:#f0fdf4;border:2px solid #10b981;border-radius:8px;">
        <h4 style="color:#10b981;margin:0 0 12px 0;font-size:18px;">🎉 Discounted Rate Available!</h4>
        <div style="margin-bottom:10px;padding:12px;background:#ffffff;border-left:4px solid #10b981;border-radius:4px;">
          <strong style="color:#1F202D;font-size:16px;display:block;margin-bottom:4px;">{{.OfferName}}</strong>
          <div style="color:#666;font-size:13px;">{{.OfferDetail}}</div>
        </div>
      </div>
      {{end}}

      <!-- Booking Details -->
      <div style="text-align:center;margin:20px 0;">
        <div style="margin-bottom:8px;">
          <span style="color:#1F202D;font-weight:bold;margin-right:8px;">Check-in:</span>
          <span style="color:#1F202D;">{{.CheckIn}}</span>
        </div>
        <div style="margin-bottom:8px;">
          <span style="color:#1F202D;font-weight:bold;margin-right:8px;">Check-out:</span>
          <span style="color:#1F202D;">{{.CheckOut}}</span>
        </div>
        <div style="margin-bottom:8px;">
          <span style="color:#1F202D;font-weight:bold;margin-right:8px;">Client:</span>
          <span style="color:#1F202D;">{{.ClientName}}</span>
        </div>
        {{if .ReservationNumber}}
        <div style="margin-bottom:8px;">
          <span style="color:#1F202D;font-weight:bold;margin-right:8px;">Reservation #:</span>
          <span style="color:#1F202D;">{{.ReservationNumber}}</span>
        </div>
        {{end}}
      </div>

      <!-- Action Buttons -->
      <div style="text-align:center;margin:20px 0;">
        <a href="https://www.disneytravelagents.com/"
           style="background:#1BC5D4;color:#fff;text-decoration:none;padding:12px 25px;border-radius:5px;display:inline-block;margin-right:10px;">
          Reserve This Room
        </a>
        <a href="https://mouseagents.com/room-finder/dashboard/"
           style="background:#1F202D;color:#fff;text-decoration:none;padding:12px 25px;border-radius:5px;display:inline-block;">
          Manage Alerts
        </a>
      </div>
    </div>

    <!-- Footer -->
    <div style="background:#1F202D;padding:15px;text-align:center;">
      <p style="color:#fff;font-size:12px;margin:0;">Mouse Agents, Inc.</p>
    </div>
  </div>
</body>
</html>`))
