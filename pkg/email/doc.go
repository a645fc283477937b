// Package email delivers contact-form messages through a transactional email
// provider behind the EmailSender interface.
//
// Three providers are available:
//   - EmailJSClient posts the template parameters to the EmailJS REST API,
//     which renders and sends the message with a template stored on EmailJS.
//   - PostmarkClient renders the message locally and sends it with Postmark.
//   - DevSender writes the rendered message and its metadata to disk.
//
// Every provider receives Credentials at call time. Missing credentials are
// reported by SendEmail as ErrMissingCredentials, never at startup:
//
//	sender, err := email.New(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, creds, email.TemplateParams{
//		FromName:  "Ada",
//		FromEmail: "ada@example.com",
//		ToName:    "Aniket Subudhi",
//		ToEmail:   "team@example.com",
//		Message:   "Hello",
//	})
//	if errors.Is(err, email.ErrFailedToSendEmail) {
//		// show a failure notice
//	}
package email
