/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

// EntityType is stored on every item written by this package.
const EntityType = "Property"

// DefaultIndexMap lays properties out in a single table, one partition per
// namespace and one item per property key.
var DefaultIndexMap = map[string]string{
	"PK": "NS#{Namespace}",
	"SK": "PROP#{Key}",
}
