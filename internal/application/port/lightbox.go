// Package port defines application-layer interfaces for external capabilities.
// Ports abstract host concerns (drawing surfaces, gallery storage), allowing the
// application layer to remain independent of a specific terminal or window toolkit.
package port

import (
	"context"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// LightboxRenderer applies lightbox render output to a visual surface.
// Render is called synchronously after each state change, in event order.
type LightboxRenderer interface {
	Render(ctx context.Context, out entity.RenderOutput)
}

// LightboxRendererFunc adapts a function to LightboxRenderer.
type LightboxRendererFunc func(ctx context.Context, out entity.RenderOutput)

// Render implements LightboxRenderer.
func (f LightboxRendererFunc) Render(ctx context.Context, out entity.RenderOutput) {
	f(ctx, out)
}
