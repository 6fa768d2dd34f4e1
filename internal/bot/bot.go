// Package bot is the Discord front-end: post a job URL in a channel, get the
// merged skill lines and the rewritten resume PDF back.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/yangzhijiany/update-resume-skills/internal/pipeline"
	"github.com/yangzhijiany/update-resume-skills/internal/resume"
)

type Bot struct {
	session  *discordgo.Session
	pipeline *pipeline.Pipeline
}

func New(token string, p *pipeline.Pipeline) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	bot := &Bot{
		session:  session,
		pipeline: p,
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("Bot is running...")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	slog.Info("Received message", "content", m.Content, "author", m.Author.Username)

	if url := firstURL(m.Content); url != "" {
		go b.processJobPosting(s, m, url)
	}
}

func (b *Bot) processJobPosting(s *discordgo.Session, m *discordgo.MessageCreate, url string) {
	slog.Info("Processing job posting", "url", url)
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	result, err := b.pipeline.Run(context.Background(), url)
	if err != nil {
		b.handleError(s, m, err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, "Updated skills:\n"+result.Summary())

	pdfPath := resume.PDFPath(result.OutputPath)
	if pdfFile, err := os.Open(pdfPath); err == nil {
		defer pdfFile.Close()
		if _, err := s.ChannelFileSend(m.ChannelID, "resume.pdf", pdfFile); err != nil {
			slog.Warn("failed to send PDF file", "error", err)
		}
	}

	s.MessageReactionsRemoveAll(m.ChannelID, m.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	slog.Info("Done processing!")
}

func (b *Bot) handleError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("Processing error", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}

// firstURL returns the first http(s) token in a message, or "".
func firstURL(content string) string {
	for _, field := range strings.Fields(content) {
		if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
			return field
		}
	}
	return ""
}
