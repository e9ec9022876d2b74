package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"foodgram/internal/cart"
	"foodgram/internal/clipper"
	"foodgram/internal/config"
	"foodgram/internal/metrics"
	"foodgram/internal/recipe"
	"foodgram/internal/sharelink"
	"foodgram/internal/shopping"
	"foodgram/internal/user"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API and the recipe, cart and export flows.
type Bot struct {
	api          *tgbotapi.BotAPI
	cfg          *config.Config
	clipper      *clipper.Clipper
	exporter     *shopping.Exporter
	metricsStore *metrics.Store
	tokens       *sharelink.Tokens

	userRepo   *user.Repository
	recipeRepo *recipe.Repository
	cartRepo   *cart.Repository
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	clipper *clipper.Clipper,
	exporter *shopping.Exporter,
	metricsStore *metrics.Store,
	tokens *sharelink.Tokens,
	userRepo *user.Repository,
	recipeRepo *recipe.Repository,
	cartRepo *cart.Repository,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          bot,
		cfg:          cfg,
		clipper:      clipper,
		exporter:     exporter,
		metricsStore: metricsStore,
		tokens:       tokens,
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		cartRepo:     cartRepo,
	}, nil
}

// RegisterHandlers registers the webhook and short-link handlers with the
// default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/s/", b.handleShortLink)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// handleShortLink resolves a base62 recipe code and renders the recipe as
// plain text.
func (b *Bot) handleShortLink(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/s/")
	id, err := sharelink.DecodeRecipeCode(code)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	rec, err := b.recipeRepo.Get(r.Context(), id)
	if err != nil {
		log.Printf("Error resolving short link %s: %v", code, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s\n\n", rec.Name)
	for _, ing := range rec.Ingredients {
		fmt.Fprintf(w, "%s (%s) — %s\n", ing.Name, ing.MeasurementUnit, ing.Amount)
	}
	fmt.Fprintf(w, "\n%s\n\nВремя приготовления: %d мин\n", rec.Text, rec.CookingTime)
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if len(b.cfg.TelegramAllowedUserIDs) > 0 {
		isAllowed := false
		for _, id := range b.cfg.TelegramAllowedUserIDs {
			if update.Message.From.ID == id {
				isAllowed = true
				break
			}
		}
		if !isAllowed {
			log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
			return
		}
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	cmd, args, _ := strings.Cut(text, " ")
	args = strings.TrimSpace(args)

	switch cmd {
	case "/start", "/help":
		b.reply(msg.Chat.ID, helpText)
	case "/link":
		b.handleLink(msg, args)
	case "/find":
		b.handleFind(msg, args)
	case "/cart":
		b.handleCart(msg, args)
	case "/export":
		b.handleExport(msg)
	case "/metrics":
		b.handleMetricsRequest(msg)
	default:
		if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
			b.handleClipperRequest(msg)
			return
		}
		b.reply(msg.Chat.ID, "Не понимаю. Отправьте ссылку на рецепт или /help.")
	}
}

const helpText = `🍴 *Foodgram Bot*

Отправьте ссылку на страницу с рецептом, и я сохраню его.

/link <токен> — привязать аккаунт
/find <текст> — найти рецепты
/cart — корзина (add <id>, remove <id>, clear)
/export — список покупок файлом`

func (b *Bot) handleLink(msg *tgbotapi.Message, token string) {
	if token == "" {
		b.reply(msg.Chat.ID, "Использование: /link <токен>")
		return
	}

	ctx := context.Background()
	userID, err := b.tokens.Verify(token)
	if err != nil {
		log.Printf("Invalid link token from %d: %v", msg.From.ID, err)
		b.reply(msg.Chat.ID, "❌ Токен недействителен или просрочен.")
		return
	}

	if err := b.userRepo.LinkTelegram(ctx, userID, msg.From.ID); err != nil {
		log.Printf("Error linking telegram %d to user %d: %v", msg.From.ID, userID, err)
		b.reply(msg.Chat.ID, "❌ Не удалось привязать аккаунт.")
		return
	}
	b.reply(msg.Chat.ID, "✅ Аккаунт привязан.")
}

// currentUser resolves the registered account linked to the sender. A nil
// user with a nil error means the sender has not run /link yet.
func (b *Bot) currentUser(ctx context.Context, msg *tgbotapi.Message) (*user.User, error) {
	u, err := b.userRepo.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		b.reply(msg.Chat.ID, "Сначала привяжите аккаунт: /link <токен>")
	}
	return u, nil
}

func (b *Bot) handleFind(msg *tgbotapi.Message, query string) {
	if query == "" {
		b.reply(msg.Chat.ID, "Использование: /find <текст>")
		return
	}

	recipes, err := b.recipeRepo.Search(context.Background(), query, 10)
	if err != nil {
		log.Printf("Error searching recipes: %v", err)
		b.reply(msg.Chat.ID, "❌ Ошибка поиска.")
		return
	}
	if len(recipes) == 0 {
		b.reply(msg.Chat.ID, "Ничего не нашлось.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🔎 *Найдено:*\n\n")
	for _, rec := range recipes {
		sb.WriteString(fmt.Sprintf("• [%d] %s (%d мин)\n  %s\n",
			rec.ID, rec.Name, rec.CookingTime, sharelink.RecipeURL(b.cfg.ShareLinkBaseURL, rec.ID)))
	}
	sb.WriteString("\nДобавить в корзину: /cart add <id>")
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleCart(msg *tgbotapi.Message, args string) {
	ctx := context.Background()
	u, err := b.currentUser(ctx, msg)
	if err != nil {
		log.Printf("Error resolving user %d: %v", msg.From.ID, err)
		return
	}
	if u == nil {
		return
	}

	action, rest, _ := strings.Cut(args, " ")
	switch action {
	case "":
		b.showCart(ctx, msg.Chat.ID, u.ID)
	case "add", "remove":
		recipeID, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			b.reply(msg.Chat.ID, fmt.Sprintf("Использование: /cart %s <id>", action))
			return
		}
		if action == "add" {
			err = b.cartRepo.Add(ctx, u.ID, recipeID)
		} else {
			err = b.cartRepo.Remove(ctx, u.ID, recipeID)
		}
		if err != nil {
			log.Printf("Error updating cart for user %d: %v", u.ID, err)
			b.reply(msg.Chat.ID, "❌ Не удалось обновить корзину.")
			return
		}
		b.showCart(ctx, msg.Chat.ID, u.ID)
	case "clear":
		if err := b.cartRepo.Clear(ctx, u.ID); err != nil {
			log.Printf("Error clearing cart for user %d: %v", u.ID, err)
			b.reply(msg.Chat.ID, "❌ Не удалось очистить корзину.")
			return
		}
		b.reply(msg.Chat.ID, "🗑 Корзина пуста.")
	default:
		b.reply(msg.Chat.ID, "Использование: /cart [add <id> | remove <id> | clear]")
	}
}

func (b *Bot) showCart(ctx context.Context, chatID, userID int64) {
	ids, err := b.cartRepo.RecipeIDs(ctx, userID)
	if err != nil {
		log.Printf("Error listing cart for user %d: %v", userID, err)
		b.reply(chatID, "❌ Не удалось показать корзину.")
		return
	}
	if len(ids) == 0 {
		b.reply(chatID, "Корзина пуста. Добавьте рецепт: /cart add <id>")
		return
	}

	recipes, err := b.recipeRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Printf("Error loading cart recipes for user %d: %v", userID, err)
		b.reply(chatID, "❌ Не удалось показать корзину.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Корзина:*\n\n")
	for _, rec := range recipes {
		sb.WriteString(fmt.Sprintf("• [%d] %s\n", rec.ID, rec.Name))
	}
	sb.WriteString("\nСписок покупок: /export")
	b.reply(chatID, sb.String())
}

func (b *Bot) handleExport(msg *tgbotapi.Message) {
	ctx := context.Background()
	u, err := b.currentUser(ctx, msg)
	if err != nil {
		log.Printf("Error resolving user %d: %v", msg.From.ID, err)
		return
	}
	if u == nil {
		return
	}

	doc, err := b.exporter.Export(ctx, u.ID)
	if err != nil {
		log.Printf("Error exporting shopping list for user %d: %v", u.ID, err)
		b.reply(msg.Chat.ID, "❌ Не удалось собрать список покупок.")
		return
	}

	file := tgbotapi.FileBytes{Name: doc.Filename, Bytes: doc.Data}
	docMsg := tgbotapi.NewDocument(msg.Chat.ID, file)
	docMsg.Caption = "🛒 Список покупок"
	if _, err := b.api.Send(docMsg); err != nil {
		log.Printf("Failed to send export document: %v", err)
	}
}

func (b *Bot) handleClipperRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	u, err := b.currentUser(ctx, msg)
	if err != nil {
		log.Printf("Error resolving user %d: %v", msg.From.ID, err)
		return
	}
	if u == nil {
		return
	}

	statusText := "✂️ *Сохраняю рецепт...*"
	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	rec, err := b.clipper.ClipURL(ctx, msg.Text, u.ID)
	var finalText string
	if err != nil {
		log.Printf("Error clipping recipe: %v", err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		finalText = fmt.Sprintf("❌ *Не удалось сохранить рецепт:*\n```\n%v\n```", safeErr)
	} else {
		finalText = fmt.Sprintf("✅ *Рецепт сохранён!*\n\n*Название:* %s\n*Ссылка:* %s\n\nВ корзину: /cart add %d",
			rec.Name, sharelink.RecipeURL(b.cfg.ShareLinkBaseURL, rec.ID), rec.ID)
	}
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, finalText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "⛔ *Access Denied*: Admin only."))
		return
	}
	b.handleMetricsCommand(msg.Chat.ID)
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.api.Send(tgbotapi.NewMessage(chatID, "❌ Error fetching metrics."))
		return
	}

	health := metrics.GetSysHealth("data")

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataSize))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

