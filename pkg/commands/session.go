package commands

import (
	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/logging"
	"tableflip.dev/goals/pkg/store"
)

// session is everything a command needs to work on the goal files.
type session struct {
	Config  store.Config
	Backend *store.DiskBackend
	Service *app.Service
	Log     zerolog.Logger
}

func openSession() (*session, error) {
	log := logging.New(ro.Logging())

	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	b, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", b.BasePath()).Msg("using goal store")

	svc := app.NewService(b, log)
	// Load problems are already logged by the stores; the session still
	// works on an empty collection.
	_ = svc.Open()

	return &session{Config: cfg, Backend: b, Service: svc, Log: log}, nil
}
