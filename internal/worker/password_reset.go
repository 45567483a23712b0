package worker

import (
	"context"
	"fmt"
	"strings"

	"masteria.app/panel/internal/queue"
)

const passwordResetSubject = "Redefinição de senha - Master IA"

type PasswordResetProcessor struct {
	mailer Mailer
}

func NewPasswordResetProcessor(mailer Mailer) *PasswordResetProcessor {
	return &PasswordResetProcessor{mailer: mailer}
}

func (p *PasswordResetProcessor) Process(ctx context.Context, msg queue.Message) error {
	if err := p.mailer.Send(ctx, Email{
		To:      msg.Email,
		Subject: passwordResetSubject,
		Body:    passwordResetBody(msg.Name, msg.ResetURL),
	}); err != nil {
		return fmt.Errorf("sending password reset email: %w", err)
	}
	return nil
}

func passwordResetBody(name, resetURL string) string {
	greeting := "Olá"
	if name = strings.TrimSpace(name); name != "" {
		greeting += " " + name
	}

	var b strings.Builder
	b.WriteString(greeting + ",\n\n")
	b.WriteString("Recebemos um pedido para redefinir a sua senha. Use o link abaixo para escolher uma nova:\n\n")
	b.WriteString(resetURL + "\n\n")
	b.WriteString("Se você não fez este pedido, ignore este email.\n")
	return b.String()
}
