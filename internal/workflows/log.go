package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/obslog/internal/audit"
	"github.com/PolarWolf314/obslog/internal/configs"
	kerrors "github.com/PolarWolf314/obslog/internal/errors"
	"github.com/PolarWolf314/obslog/internal/vault"
)

// Appender sends text to a note in the vault.
type Appender interface {
	Append(ctx context.Context, apiKey, body, targetPath string) (*vault.Response, error)
}

// LogOptions configures the log workflow.
type LogOptions struct {
	// Body is the literal text to append.
	Body string

	// Client sends the request. Defaults to vault.NewClient().
	Client Appender

	// BeforeSend, if set, is called with the target path once the API key
	// has been found and before the request is made.
	BeforeSend func(targetPath string)
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// TargetPath is the encoded path the text was sent to.
	TargetPath string

	// Response is the vault's reply, whatever its status.
	Response *vault.Response
}

// Log appends opts.Body to the stored target note.
//
// Returns ErrNoAPIKey, without making a request, if no API key is stored.
// Returns ErrTargetNotSet if the settings hold no target.
// Returns an error wrapping ErrRequestFailed if the request fails or times out.
func Log(ctx context.Context, settings *configs.Settings, opts LogOptions) (*LogResult, error) {
	apiKey, ok := settings.APIKey()
	if !ok {
		return nil, kerrors.ErrNoAPIKey
	}

	targetPath, ok := settings.TargetFile()
	if !ok {
		return nil, kerrors.ErrTargetNotSet
	}

	client := opts.Client
	if client == nil {
		client = vault.NewClient()
	}

	if opts.BeforeSend != nil {
		opts.BeforeSend(targetPath)
	}

	resp, err := client.Append(ctx, apiKey, opts.Body, targetPath)
	if err != nil {
		return nil, fmt.Errorf("appending to %s: %w", targetPath, err)
	}

	audit.Log(settings.Dir(), audit.Entry{
		Operation: audit.OpLog,
		Target:    targetPath,
		Bytes:     len(opts.Body),
		Status:    resp.StatusCode,
	})

	return &LogResult{TargetPath: targetPath, Response: resp}, nil
}
