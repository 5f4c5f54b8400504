package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/constants"
	"github.com/FelixBrandt/Foliogram/internal/pkg/portfolio"
)

var contactMessenger portfolio.Messenger = portfolio.LogMessenger{}

// InitializeContactController swaps the delivery backend for contact form
// submissions.
func InitializeContactController(messenger portfolio.Messenger) {
	contactMessenger = messenger
}

// HandleContact renders the contact form.
func HandleContact(c *fiber.Ctx) error {
	return c.Render("contact", fiber.Map{
		"Layout": newLayout(c, "contact", "Contact"),
	}, "layouts/main")
}

// HandleContactSubmit validates the form submission and redirects back with
// a flash message either way.
func HandleContactSubmit(c *fiber.Ctx) error {
	msg := models.NewContactMessage(
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("subject"),
		c.FormValue("message"),
	)

	if err := portfolio.SubmitContact(contactMessenger, msg); err != nil {
		fm := fiber.Map{"type": "error", "message": "Please check your input: " + err.Error()}
		return flash.WithError(c, fm).Redirect(constants.ContactRoute)
	}

	fm := fiber.Map{"type": "success", "message": "Thanks for your message! I will get back to you soon."}
	return flash.WithSuccess(c, fm).Redirect(constants.ContactRoute)
}

// HandleAPIContact is the JSON variant of the contact submission.
func HandleAPIContact(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	msg := models.NewContactMessage(req.Name, req.Email, req.Subject, req.Message)
	if err := portfolio.SubmitContact(contactMessenger, msg); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"id": msg.ID})
}
