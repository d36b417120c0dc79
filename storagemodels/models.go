/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
)

// Write is a single SetProperty call as observed by a store.
type Write struct {
	Key   string
	Value string
}

// PropertyRecord is the persisted form of a property.
type PropertyRecord struct {
	// Namespace groups the properties of one launcher instance.
	Namespace string `json:"namespace" dynamodbav:"Namespace"`

	// Key is the destination property key, e.g. org.allauncher.window.title.
	Key string `json:"key" dynamodbav:"Key"`

	Value string `json:"value" dynamodbav:"Value"`

	// Timestamp of the last write.
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt" dynamodbav:"-"`
}
