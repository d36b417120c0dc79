/*
Package datastore defines the property store interfaces used by sysprops.

	type PropertyWriter interface {
	    SetProperty(ctx context.Context, key, value string) error
	}

	type PropertyStore interface {
	    PropertyWriter
	    GetProperty(ctx context.Context, key string) (string, error)
	    ClearProperty(ctx context.Context, key string) error
	    Properties(ctx context.Context) (map[string]string, error)
	}

Implementations:
  - process: the process-wide in-memory store that later-running code reads
  - env: mirrors properties into the OS environment for child processes
  - ddb: DynamoDB-backed store, one item per property in a namespace
  - mock: recording store for testing
*/
package datastore
