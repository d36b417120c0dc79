/*
Package storagemodels defines the data structures shared by the property stores.

Write records one SetProperty call and is what the mock store logs:

	[]Write{
	    {Key: "org.allauncher.instance.name", Value: "Vanilla-1.20"},
	    {Key: "multimc.instance.title", Value: "Vanilla-1.20"},
	}

PropertyRecord is the persisted form used by backends that keep history,
such as the DynamoDB store:

	type PropertyRecord struct {
	    Namespace string
	    Key       string
	    Value     string
	    UpdatedAt strfmt.DateTime
	}
*/
package storagemodels
