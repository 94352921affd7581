package email

import (
	"fmt"

	"youthhub/internal/models"
)

// RequestSubmittedEmail builds the notification sent to a supervisor when a
// member asks them to supervise a spark.
func RequestSubmittedEmail(req *models.SupervisionRequest, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("New supervision request: %s", req.IdeaTitle)

	htmlBody = fmt.Sprintf(`
		<h2>New Supervision Request</h2>
		<p><strong>%s</strong> has asked you to supervise their spark:</p>
		<table style="border-collapse: collapse; margin: 16px 0;">
			<tr><td style="padding: 4px 12px 4px 0;"><strong>Spark:</strong></td><td>%s</td></tr>
			<tr><td style="padding: 4px 12px 4px 0;"><strong>Submitted by:</strong></td><td>%s</td></tr>
		</table>
		<p><a href="%s/supervision">Review the request</a> to accept or reject it.</p>
	`, req.OwnerName, req.IdeaTitle, req.OwnerName, baseURL)

	textBody = fmt.Sprintf(`New Supervision Request

%s has asked you to supervise their spark:

Spark: %s
Submitted by: %s

Review the request at %s/supervision to accept or reject it.
`, req.OwnerName, req.IdeaTitle, req.OwnerName, baseURL)

	return subject, wrapEmail(subject, htmlBody), textBody
}

// RequestAcceptedEmail builds the notification sent to an owner when a
// supervisor accepts their request. The spark is now public.
func RequestAcceptedEmail(req *models.SupervisionRequest, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your spark is live: %s", req.IdeaTitle)

	htmlBody = fmt.Sprintf(`
		<h2>Supervision Request Accepted</h2>
		<p>Good news! Your supervision request for <strong>%s</strong> has been accepted.</p>
		<p>Your spark is now publicly visible and your supervisor will be in touch.</p>
		<p><a href="%s/sparks">View your spark</a></p>
	`, req.IdeaTitle, baseURL)

	textBody = fmt.Sprintf(`Supervision Request Accepted

Good news! Your supervision request for "%s" has been accepted.

Your spark is now publicly visible and your supervisor will be in touch.

View your spark at %s/sparks
`, req.IdeaTitle, baseURL)

	return subject, wrapEmail(subject, htmlBody), textBody
}

// RequestRejectedEmail builds the notification sent to an owner when a
// supervisor rejects their request. The spark is back in draft.
func RequestRejectedEmail(req *models.SupervisionRequest, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Supervision request declined: %s", req.IdeaTitle)

	htmlBody = fmt.Sprintf(`
		<h2>Supervision Request Declined</h2>
		<p>Your supervision request for <strong>%s</strong> was declined.</p>
		<p>Your spark is back in draft. You can revise it and ask another supervisor.</p>
		<p><a href="%s/sparks">Edit your spark</a></p>
	`, req.IdeaTitle, baseURL)

	textBody = fmt.Sprintf(`Supervision Request Declined

Your supervision request for "%s" was declined.

Your spark is back in draft. You can revise it and ask another supervisor.

Edit your spark at %s/sparks
`, req.IdeaTitle, baseURL)

	return subject, wrapEmail(subject, htmlBody), textBody
}

// RequestCancelledEmail builds the notification sent to a supervisor when an
// owner withdraws a pending request.
func RequestCancelledEmail(req *models.SupervisionRequest, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Supervision request withdrawn: %s", req.IdeaTitle)

	htmlBody = fmt.Sprintf(`
		<h2>Supervision Request Withdrawn</h2>
		<p><strong>%s</strong> has withdrawn their supervision request for <strong>%s</strong>.</p>
		<p>No action is needed on your part.</p>
	`, req.OwnerName, req.IdeaTitle)

	textBody = fmt.Sprintf(`Supervision Request Withdrawn

%s has withdrawn their supervision request for "%s".

No action is needed on your part.
`, req.OwnerName, req.IdeaTitle)

	_ = baseURL
	return subject, wrapEmail(subject, htmlBody), textBody
}

// StaleRequestReminderEmail builds the reminder sent to a supervisor about
// requests that have sat in their queue for too long.
func StaleRequestReminderEmail(requests []*models.SupervisionRequest, baseURL string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Reminder: %d supervision request(s) awaiting review", len(requests))

	rows := ""
	lines := ""
	for _, req := range requests {
		rows += fmt.Sprintf(
			`<tr><td style="padding: 4px 12px 4px 0;">%s</td><td style="padding: 4px 12px 4px 0;">%s</td><td>%s</td></tr>`,
			req.IdeaTitle, req.OwnerName, req.CreatedAt.Format("2006-01-02"))
		lines += fmt.Sprintf("  - %s (by %s, submitted %s)\n",
			req.IdeaTitle, req.OwnerName, req.CreatedAt.Format("2006-01-02"))
	}

	htmlBody = fmt.Sprintf(`
		<h2>Pending Supervision Requests</h2>
		<p>The following requests are still waiting for your decision:</p>
		<table style="border-collapse: collapse; margin: 16px 0;">
			<tr><th style="text-align: left; padding-right: 12px;">Spark</th><th style="text-align: left; padding-right: 12px;">Member</th><th style="text-align: left;">Submitted</th></tr>
			%s
		</table>
		<p><a href="%s/supervision">Review your queue</a></p>
	`, rows, baseURL)

	textBody = fmt.Sprintf(`Pending Supervision Requests

The following requests are still waiting for your decision:

%s
Review your queue at %s/supervision
`, lines, baseURL)

	return subject, wrapEmail(subject, htmlBody), textBody
}

// wrapEmail wraps content in a basic HTML email layout.
func wrapEmail(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>%s</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	%s
	<hr style="border: none; border-top: 1px solid #eee; margin: 24px 0;">
	<p style="color: #999; font-size: 12px;">This is an automated message from YouthHub. Please do not reply to this email.</p>
</body>
</html>`, title, content)
}
