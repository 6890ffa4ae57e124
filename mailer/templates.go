package mailer

import (
	"fmt"
	"html"

	"portfolio-backend/models"
)

// OwnerAlert builds the notification sent to the site owner when a visitor
// submits the contact form.
func OwnerAlert(contact models.Contact) (subject, body string) {
	subject = fmt.Sprintf("New Contact Form Submission from %s", contact.Name)

	phoneRow := ""
	if contact.Phone != "" {
		phoneRow = fmt.Sprintf(`<p><strong>Phone:</strong> %s</p>`, html.EscapeString(contact.Phone))
	}

	body = fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #00d9ff;">New Contact Form Submission</h2>
		<div style="background: #f5f5f5; padding: 20px; border-radius: 10px; margin: 20px 0;">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			%s
			<p><strong>Message:</strong></p>
			<p style="white-space: pre-wrap;">%s</p>
		</div>
		<p style="color: #666; font-size: 12px;">
			Submitted on: %s<br>
			IP Address: %s
		</p>
	</div>
`,
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		phoneRow,
		html.EscapeString(contact.Message),
		contact.CreatedAt.Format("02 Jan 2006 15:04:05"),
		html.EscapeString(contact.IPAddress),
	)

	return subject, body
}

// Acknowledgement builds the automatic reply sent back to the visitor.
func Acknowledgement(contact models.Contact) (subject, body string) {
	subject = "Thank you for reaching out"

	body = fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #00d9ff;">Thank You for Reaching Out!</h2>
		<p>Hi %s,</p>
		<p>Thank you for your message. I've received your inquiry and will get back to you as soon as possible, typically within 24-48 hours.</p>
		<div style="background: #f5f5f5; padding: 20px; border-radius: 10px; margin: 20px 0;">
			<p><strong>Your message:</strong></p>
			<p style="white-space: pre-wrap;">%s</p>
		</div>
		<p>Best regards,<br>Himangshu</p>
		<hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
		<p style="color: #666; font-size: 12px;">
			This is an automated response. Please do not reply to this email.
		</p>
	</div>
`,
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Message),
	)

	return subject, body
}
