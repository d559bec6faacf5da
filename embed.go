package portfolio

import "embed"

// EmbeddedAssets contains files shipped with the site:
// content.yaml (the default dataset) and portfolio.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
