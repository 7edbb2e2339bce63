package telegram

import (
	"context"
	"encoding/json"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"prof-bot/api/internal/router"
	"prof-bot/api/internal/store"
)

type Router struct {
	Bot       *tgbotapi.BotAPI
	Profiles  *store.ProfileRepo
	Decisions *store.DecisionRepo
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Salut ! Dis-moi ce que tu veux travailler en maths "+
			"(ex: « des exercices sur les dérivées », « explique-moi le discriminant »).\n"+
			"Commandes : /niveau, /health")
	case "health":
		r.send(cid, "✅ OK")
	case "niveau":
		r.handleNiveau(cid, upd.Message.Text)
	case "debug":
		r.handleDebug(cid)
	default:
		r.send(cid, "Commande inconnue")
	}
}

func (r *Router) handleNiveau(cid int64, text string) {
	ctx := context.Background()
	arg := strings.TrimSpace(strings.TrimPrefix(text, "/niveau"))
	if arg == "" {
		cur, err := r.Profiles.Level(ctx, cid)
		if err != nil || cur == "" {
			r.send(cid, "Aucun niveau enregistré. Utilisation : /niveau 3e collège")
			return
		}
		r.send(cid, "Ton niveau actuel : "+cur+"\nPour changer : /niveau 2nde")
		return
	}
	id, ok := router.ResolveLevel(arg)
	if !ok {
		r.send(cid, "Je ne connais pas ce niveau. Exemples : 3e collège, 2nde, 1ère, terminale")
		return
	}
	if err := r.Profiles.SetLevel(ctx, cid, id); err != nil {
		r.send(cid, "Impossible d'enregistrer le niveau, réessaie plus tard.")
		return
	}
	r.send(cid, "C'est noté : niveau "+id)
}

func (r *Router) handleDebug(cid int64) {
	if r.Decisions == nil {
		r.send(cid, "(pas de journal)")
		return
	}
	row, err := r.Decisions.LastByChat(context.Background(), cid)
	if err != nil {
		r.send(cid, "(aucune décision enregistrée)")
		return
	}
	js, _ := json.MarshalIndent(row.Output, "", "  ")
	r.send(cid, "Dernière décision :\n"+string(js))
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	cid := upd.Message.Chat.ID
	text := strings.TrimSpace(upd.Message.Text)
	if text == "" {
		return
	}

	// after a CLARIFY we fold the answer back into the pending prompt once
	if prev, ok := pendingPrompt(cid); ok {
		clearPending(cid)
		text = prev + " " + text
	}
	r.routeAndReply(context.Background(), cid, text)
}

func (r *Router) send(chatID int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(chatID, text))
}
