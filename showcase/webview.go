package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// buildWebViewPage showcases embedding a native web view.
func buildWebViewPage(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	return demoPage(ctx, "WebView",
		sectionTitle("Native WebView", colors),
		widgets.VSpace(12),
		widgets.Text{Content: "This view renders a platform-native browser surface.", Style: labelStyle(colors)},
		widgets.VSpace(8),
		widgets.Text{Content: "Load any HTTPS URL in the native layer.", Style: graphics.TextStyle{
			Color:    colors.OnSurfaceVariant,
			FontSize: 13,
		}},
		widgets.VSpace(16),
		widgets.NativeWebView{
			InitialURL: "https://www.google.com",
			Height:     420,
		},
		widgets.VSpace(40),
	)
}
