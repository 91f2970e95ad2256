package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// Notifier mengirim satu pesan ke satu nomor.
type Notifier interface {
	Send(ctx context.Context, phone, message string) error
}

var ErrNotifierDisabled = errors.New("notifier belum dikonfigurasi")

// FonnteNotifier: WhatsApp gateway Fonnte (form target/message + header Authorization).
type FonnteNotifier struct {
	URL     string
	Token   string
	Timeout time.Duration
}

func NewFonnteNotifier(url, token string) *FonnteNotifier {
	return &FonnteNotifier{URL: url, Token: token, Timeout: 15 * time.Second}
}

type fonnteResponse struct {
	Status bool   `json:"status"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

func (n *FonnteNotifier) Send(ctx context.Context, phone, message string) error {
	if n == nil || strings.TrimSpace(n.Token) == "" || strings.TrimSpace(n.URL) == "" {
		return ErrNotifierDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := n.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout || timeout <= 0 {
			timeout = left
		}
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("target", phone)
	args.Set("message", message)

	a := fiber.Post(n.URL)
	a.Set(fiber.HeaderAuthorization, n.Token)
	a.Form(args)
	if timeout > 0 {
		a.Timeout(timeout)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("fonnte: %w", errors.Join(errs...))
	}
	if code >= 300 {
		return fmt.Errorf("fonnte: status %d", code)
	}

	var res fonnteResponse
	if err := sonic.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("fonnte: respons tidak valid: %w", err)
	}
	if !res.Status {
		reason := res.Reason
		if reason == "" {
			reason = res.Detail
		}
		return fmt.Errorf("fonnte: %s", reason)
	}
	return nil
}
