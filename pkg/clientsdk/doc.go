/*
Package clientsdk provides a client SDK for the clients API.

# Overview

The API manages client records identified by a business-unique shared key.
All client endpoints live under the fixed path prefix /api/clients:

	GET  /api/clients/getClients              list every client
	GET  /api/clients/searchClient/{key}      fetch one client by shared key
	POST /api/clients/createClient            create a client

Create an SDKClient against the API host:

	client := clientsdk.NewSDKClient("http://localhost:8001", 0)

	clients, err := client.ListClients(ctx)

	found, err := client.FindBySharedKey(ctx, "k1")
	if found == nil && err == nil {
		// no client with that key
	}

	ack, err := client.CreateClient(ctx, clientsdk.Client{
		SharedKey: "k1",
		Name:      "Acme",
		Email:     "a@b.com",
	})

# Error Handling

Every method performs exactly one HTTP attempt and never retries. Failures are
always returned as *clientsdk.Error, classified into one of two kinds:

  - KindDuplicateKey: the API answered 400 with data.respondeCode "01".
    Error() is "The client with that shared key already exists."
  - KindGeneric: anything else, including transport failures.
    Error() is "Something went wrong! Please try again."

The message is safe to show to a user. The underlying cause is available through
errors.Unwrap for logging:

	_, err := client.CreateClient(ctx, c)
	switch {
	case errors.Is(err, clientsdk.ErrDuplicateSharedKey):
		// ask the user for another shared key
	case err != nil:
		logger.Error("create failed", "error", err, "cause", errors.Unwrap(err))
	}

A lookup miss (HTTP 404) is not an error: FindBySharedKey returns (nil, nil).

# Health

GetLiveness and GetReadiness query /livez and /readyz on the API host.
*/
package clientsdk
