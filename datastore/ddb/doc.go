/*
Package ddb provides a DynamoDB implementation of datastore.PropertyStore.

Projected properties are persisted so that other hosts (dashboards, crash
reporters, a relaunch on another machine) can see what an instance was
started with. The table uses a single-table layout expanded from a macro
index map:

	indexMap := map[string]string{
	    "PK": "NS#{Namespace}",   // becomes "NS#Vanilla-1.20"
	    "SK": "PROP#{Key}",       // becomes "PROP#org.allauncher.window.title"
	}

Every item also carries EntityType, Namespace, Key, Value and an RFC 3339
UpdatedAt timestamp.

Usage:

	store, err := ddb.NewDynamodbPropertyStore(ctx, accessKey, secretKey,
	    "us-east-1", "launcher-properties", "Vanilla-1.20",
	    ddb.WithLogger(logger))

	err = store.SetProperty(ctx, "org.allauncher.window.title", "My Launcher")
	props, err := store.Properties(ctx) // pages through the namespace
*/
package ddb
