package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// MailStatus is satisfied by the email service.
type MailStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mail MailStatus
}

func NewHealthUsecase(mail MailStatus) HealthUsecase {
	return &healthUsecase{mail: mail}
}

// Check never fails on mail configuration; a site without credentials still
// serves pages and accepts submissions.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "disabled"
	if u.mail != nil && u.mail.IsConfigured() {
		mail = "configured"
	}
	return map[string]string{
		"status": "ok",
		"mail":   mail,
	}
}
