package emailController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaOM24/Cute-Mark/mailer"
)

type SendEmailInput struct {
	Email      string `json:"email" binding:"required,email"`
	Subject    string `json:"subject" binding:"required"`
	HTML       string `json:"html"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	FooterText string `json:"footerText"`
}

// POST /send-email
//
// Sends either the raw HTML supplied by the caller or, when title and message
// are given instead, the branded template.
func SendEmail(client *mailer.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SendEmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email and subject are required"})
			return
		}

		var htmlBody string
		switch {
		case input.HTML != "":
			htmlBody = input.HTML
		case input.Title != "" && input.Message != "":
			body, err := mailer.BuildTemplate(mailer.TemplateData{
				Title:      input.Title,
				Message:    input.Message,
				ButtonText: input.ButtonText,
				ButtonLink: input.ButtonLink,
				FooterText: input.FooterText,
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build email"})
				return
			}
			htmlBody = body
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Provide html or (title and message)"})
			return
		}

		if err := client.Send(input.Email, input.Subject, htmlBody); err != nil {
			log.Printf("❌ Failed to send email to %s: %v", input.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
	}
}
