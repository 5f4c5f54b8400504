package portfolio

import (
	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/app/models"
)

// Messenger delivers a validated contact message. The default implementation
// is a stub; a real deployment plugs in mail delivery here.
type Messenger interface {
	Send(msg *models.ContactMessage) error
}

// LogMessenger is the bundled delivery stub: it validates nothing extra and
// just records the submission.
type LogMessenger struct{}

func (LogMessenger) Send(msg *models.ContactMessage) error {
	log.Infof("contact message %s received from %s <%s>: %s", msg.ID, msg.Name, msg.Email, msg.Subject)
	return nil
}

// SubmitContact validates and delivers one contact form submission.
func SubmitContact(messenger Messenger, msg *models.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	return messenger.Send(msg)
}
