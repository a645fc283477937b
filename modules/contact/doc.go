// Package contact implements the contact page: the form state, the delivery
// of a submitted message through an email.EmailSender, the transient alert
// shown for the outcome and the timed reset after a successful delivery.
//
// UI state lives in State and changes only through Reduce. A Submitter runs
// one submission and reports every intermediate State to an Emitter, which
// the HTTP layer turns into Datastar patches.
//
//	svc := contact.NewService(cfg, sender, views, errorHandler, log)
//	r.Mount("/contact", svc.Handle())
package contact
