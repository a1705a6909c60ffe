package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"

	"urlpro/internal/mailer"
	"urlpro/internal/service"
	"urlpro/internal/types"
)

const handlerTimeout = 10 * time.Second

const (
	msgWelcome    = "Hi! Send me a long link and I will shorten it.\nUse /link <api_key> to connect your account."
	msgLinkUsage  = "Usage: /link <api_key>"
	msgBadKey     = "That API key is not valid."
	msgBadURL     = "The link must start with http:// or https:// and contain a domain."
	msgQuota      = "Your monthly API call limit is used up."
	msgTryAgain   = "Could not create the link. Please try again later."
	msgLinkedTmpl = "Linked to account %s. Links you send now count against its quota."
)

// TelegramBot shortens links sent in chat and delivers weekly digests.
type TelegramBot struct {
	tgBot     *tele.Bot
	accounts  *service.Accounts
	shortener *service.Shortener
}

func NewTelegramBot(tgToken string, accounts *service.Accounts, shortener *service.Shortener) (*TelegramBot, error) {
	pref := tele.Settings{
		Token:  tgToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		logrus.WithError(err).Error("failed to initialize telegram bot")
		return nil, err
	}

	return &TelegramBot{
		tgBot:     bot,
		accounts:  accounts,
		shortener: shortener,
	}, nil
}

func (b *TelegramBot) Start(ctx context.Context) error {
	logrus.WithField("bot_username", b.tgBot.Me.Username).Info("Telegram bot started")

	b.tgBot.Handle("/start", b.handleStart)
	b.tgBot.Handle("/link", b.handleLink)
	b.tgBot.Handle(tele.OnText, b.handleMessage)

	go func() {
		<-ctx.Done()
		logrus.Info("Telegram bot shutting down")
		b.tgBot.Stop()
	}()

	b.tgBot.Start()
	return nil
}

func (b *TelegramBot) handleStart(c tele.Context) error {
	logrus.WithField("chat_id", c.Chat().ID).Debug("command /start received")
	return c.Send(msgWelcome)
}

func (b *TelegramBot) handleLink(c tele.Context) error {
	key := apiKeyArg(c.Message().Payload)
	if key == "" {
		return c.Send(msgLinkUsage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	user, err := b.accounts.LinkTelegram(ctx, key, c.Chat().ID)
	if err != nil {
		if errors.Is(err, types.ErrInvalidAPIKey) {
			return c.Send(msgBadKey)
		}
		logrus.WithError(err).WithField("chat_id", c.Chat().ID).Error("failed to link telegram chat")
		return c.Send(msgTryAgain)
	}
	return c.Send(fmt.Sprintf(msgLinkedTmpl, user.Username))
}

func (b *TelegramBot) handleMessage(c tele.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	req, err := b.shortenRequest(ctx, c.Chat().ID, c.Text())
	if err != nil {
		logrus.WithError(err).WithField("chat_id", c.Chat().ID).Error("failed to load linked profile")
		return c.Send(msgTryAgain)
	}

	u, err := b.shortener.Shorten(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("chat_id", c.Chat().ID).Warn("failed to create short link")
		return c.Send(replyForError(err))
	}
	return c.Send("Here is your short link:\n" + u.Link(b.shortener.BaseURL()))
}

// shortenRequest charges the linked account when the chat has one. Chats
// without a linked account shorten anonymously.
func (b *TelegramBot) shortenRequest(ctx context.Context, chatID int64, text string) (types.ShortenRequest, error) {
	req := types.ShortenRequest{URL: strings.TrimSpace(text), FetchMetadata: true}
	profile, err := b.accounts.ProfileByTelegram(ctx, chatID)
	switch {
	case errors.Is(err, types.ErrUserNotFound):
		return req, nil
	case err != nil:
		return req, err
	}
	req.OwnerID = &profile.UserID
	req.APIKey = profile.APIKey
	return req, nil
}

// SendWeeklyReport skips users without a linked chat.
func (b *TelegramBot) SendWeeklyReport(_ context.Context, d types.WeeklyDigest) error {
	if d.TelegramChatID == 0 {
		return nil
	}
	if _, err := b.tgBot.Send(&tele.Chat{ID: d.TelegramChatID}, mailer.WeeklyText(d)); err != nil {
		return fmt.Errorf("send weekly report to chat %d: %w", d.TelegramChatID, err)
	}
	return nil
}

func apiKeyArg(payload string) string {
	fields := strings.Fields(payload)
	if len(fields) != 1 {
		return ""
	}
	return fields[0]
}

func replyForError(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidURL):
		return msgBadURL
	case errors.Is(err, types.ErrQuotaExceeded):
		return msgQuota
	default:
		return msgTryAgain
	}
}
