package catalog

import _ "embed"

// The demo catalog shipped with the service. The first entry is the featured
// product and is discounted wherever it is rendered.
//
//go:embed catalog.json
var embeddedCatalog []byte
