package telegram

import (
	"context"
	"log"

	"prof-bot/api/internal/router"
)

func (r *Router) routeAndReply(ctx context.Context, cid int64, text string) {
	in := router.RouterInput{Message: text}
	if r.Profiles != nil {
		if lvl, err := r.Profiles.Level(ctx, cid); err == nil && lvl != "" {
			in.UserProfile = &router.UserProfile{Level: &lvl}
		}
	}

	out, err := router.RoutePrompt(in)
	if err != nil {
		log.Printf("route chat=%d: %v", cid, err)
		r.send(cid, "Oups, une erreur interne. Réessaie dans un instant.")
		return
	}

	if r.Decisions != nil {
		if err := r.Decisions.Insert(ctx, cid, text, out); err != nil {
			log.Printf("decision log chat=%d: %v", cid, err)
		}
	}

	switch out.Action {
	case router.ActionBlocked:
		r.send(cid, "Je ne peux pas t'aider là-dessus. Parlons plutôt de maths 🙂")
	case router.ActionUnsupportedLanguage:
		r.send(cid, "Je ne comprends que le français pour l'instant. Tu peux reformuler ta demande en français ?")
	case router.ActionClarify:
		setPending(cid, text)
		r.send(cid, out.Clarify.Question)
	case router.ActionRoute:
		r.send(cid, routeRecap(out))
	}
}
