package cli

import (
	"context"
	"fmt"
)

const defaultChatMaxTokens = 100

// health probes backend connectivity without authentication.
func (a *App) health(ctx context.Context) {
	if err := a.client.Health(ctx); err != nil {
		fmt.Fprintf(a.out, "Backend unreachable: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Backend OK")
}

// aiTest calls the ancillary AI test endpoint and dumps the raw payload.
func (a *App) aiTest(ctx context.Context) {
	raw, err := a.client.AITest(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "AI test failed: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, string(raw))
}

func (a *App) aiChat(ctx context.Context) {
	prompt, err := GetSimpleText(a.reader, "Prompt", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	resp, err := a.client.AIChat(ctx, prompt, defaultChatMaxTokens)
	if err != nil {
		fmt.Fprintf(a.out, "Chat failed: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "%s\n(model: %s)\n", resp.Response, resp.Model)
}
