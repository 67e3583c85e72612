package game

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/portfolio-rain/internal/contact"
	"github.com/iburimskiy/portfolio-rain/internal/notify"
)

// formInput is the outcome of the contact dialogs.
type formInput struct {
	form      contact.Form
	cancelled bool
	err       error
}

// askContact collects the form fields with native entry dialogs, prefilled
// with prev. Cancelling any dialog abandons the whole form.
func askContact(prev contact.Form) formInput {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Your name", &prev.Name},
		{"Your email", &prev.Email},
		{"Your message", &prev.Message},
	}
	for _, f := range fields {
		v, err := zenity.Entry(f.prompt,
			zenity.Title("Contact"),
			zenity.EntryText(*f.value),
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return formInput{cancelled: true}
			}
			return formInput{err: err}
		}
		*f.value = v
	}
	return formInput{form: prev}
}

// openContact starts the dialogs on their own goroutine so the window keeps
// rendering; pollContact picks up the answer.
func (g *Game) openContact() {
	if g.asking || g.sending {
		return
	}
	g.asking = true
	draft := g.draft
	go func() {
		g.forms <- askContact(draft)
	}()
}

// pollContact advances the contact flow without blocking Update.
func (g *Game) pollContact() {
	select {
	case in := <-g.forms:
		g.asking = false
		g.submit(in)
	default:
	}

	if g.results == nil {
		return
	}
	select {
	case res := <-g.results:
		g.results = nil
		g.sending = false
		g.cancel()
		g.cancel = nil
		if res.Kind == notify.Success {
			g.draft = contact.Form{}
		}
		g.show(res)
	default:
	}
}

func (g *Game) submit(in formInput) {
	switch {
	case in.cancelled:
		return
	case in.err != nil:
		g.log.Warn("contact dialog failed", zap.Error(in.err))
		g.show(notify.Notification{Text: in.err.Error(), Kind: notify.Error})
		return
	}

	g.draft = in.form
	if err := in.form.Validate(); err != nil {
		g.show(notify.Notification{Text: contact.Message(err), Kind: notify.Error})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.sending = true
	g.results = g.client.SubmitAsync(ctx, in.form)
}
