package root

import (
	"context"
	"log/slog"
	"os"

	"artquest/internal/config"
	"artquest/internal/gemini"
	"artquest/internal/store"
	"artquest/internal/tasks"
)

func openStore(ctx context.Context) (*store.Store, func(), error) {
	opts := config.Load()
	path := opts.DBPath
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	st, err := store.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}
	return st, cleanup, nil
}

// openClient builds the generation client. The environment key wins over
// the stored one so a session override never has to touch the store.
func openClient(ctx context.Context, st *store.Store) *gemini.Client {
	opts := config.Load()
	key := opts.GeminiAPIKey
	if key == "" {
		key, _ = st.APIKey(ctx)
	}
	return gemini.NewClient(gemini.ClientConfig{
		Endpoint: opts.GeminiEndpoint,
		APIKey:   key,
		Timeout:  opts.Timeout,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
}

func openManager(ctx context.Context) (*tasks.Manager, *store.Store, func(), error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	client := openClient(ctx, st)
	return tasks.NewManager(st, client, config.Load().AttendanceBonus), st, cleanup, nil
}
