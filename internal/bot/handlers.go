package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

const helpText = "Available commands:\n" +
	"/seasons - List seasons and their load state\n" +
	"/rankings [year] - Power rankings\n" +
	"/ratings [year] - F-DVOA ratings\n" +
	"/positions [year] - Positional scores\n" +
	"/variance [year] - Weekly score spread\n" +
	"/team <team> [year] - One team's numbers\n" +
	"/refresh - Reload every season"

type Handler struct {
	dashboard *service.DashboardService
}

func NewHandler(dashboard *service.DashboardService) *Handler {
	return &Handler{dashboard: dashboard}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to the league dashboard! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "seasons":
		msg.Text = service.FormatSeasons(h.dashboard.Config(), h.dashboard.Seasons())
	case "rankings":
		h.handleRankings(&msg, args)
	case "ratings":
		h.handleRatings(&msg, args)
	case "positions":
		h.handlePositions(&msg, args)
	case "variance":
		h.handleVariance(&msg, args)
	case "team":
		h.handleTeam(&msg, args)
	case "refresh":
		h.handleRefresh(ctx, &msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleRankings(msg *tgbotapi.MessageConfig, args string) {
	view, err := h.dashboard.PowerRankings(args)
	if err != nil {
		msg.Text = unavailable("power rankings", err)
	} else {
		msg.Text = service.FormatRankings(view)
	}
}

func (h *Handler) handleRatings(msg *tgbotapi.MessageConfig, args string) {
	view, err := h.dashboard.Ratings(args)
	if err != nil {
		msg.Text = unavailable("F-DVOA ratings", err)
	} else {
		msg.Text = service.FormatRatings(view)
	}
}

func (h *Handler) handlePositions(msg *tgbotapi.MessageConfig, args string) {
	table, err := h.dashboard.PositionalTable(args)
	if err != nil {
		msg.Text = unavailable("positional analysis", err)
	} else {
		msg.Text = service.FormatPositional(table)
	}
}

func (h *Handler) handleVariance(msg *tgbotapi.MessageConfig, args string) {
	view, err := h.dashboard.Variance(args)
	if err != nil {
		msg.Text = unavailable("weekly variance", err)
	} else {
		msg.Text = service.FormatVariance(view)
	}
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name> [year]"
		return
	}
	name, year := splitYear(args)
	report, err := h.dashboard.TeamReport(name, year)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team report: %v", err)
	} else {
		msg.Text = service.FormatTeamReport(report)
	}
}

func (h *Handler) handleRefresh(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.dashboard.Refresh(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error refreshing seasons: %v", err)
		return
	}
	msg.Text = fmt.Sprintf("🔄 Reloaded %d season(s), %d failed.", len(report.Loaded), len(report.Failed))
}

func unavailable(panel string, err error) string {
	if errors.Is(err, service.ErrNotAvailable) {
		return fmt.Sprintf("No %s available (%v).", panel, err)
	}
	return fmt.Sprintf("Error fetching %s: %v", panel, err)
}

// splitYear peels a trailing four-digit year off a team argument.
func splitYear(args string) (string, string) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return args, ""
	}
	last := fields[len(fields)-1]
	if len(last) != 4 || strings.IndexFunc(last, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return args, ""
	}
	return strings.Join(fields[:len(fields)-1], " "), last
}
