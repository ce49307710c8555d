package email

import "fmt"

// PasswordResetMessage builds the reset email for a user.
func PasswordResetMessage(to, name, resetToken string) *Message {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>We received a request to reset your password. Use the token below
		to set a new password. The token is valid for one hour.</p>
		<p><strong>%s</strong></p>
		<p>If you did not request a reset, you can ignore this email.</p>
	`, name, resetToken)

	return &Message{
		To:      to,
		Subject: "Password reset request",
		Body:    body,
	}
}
