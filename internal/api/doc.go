// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime
// AI Agent backend.
//
// The client is the single point of outbound communication: it attaches
// standard headers, switches to multipart encoding when a file payload rides
// along, and maps transport failures to a consistent error type. Connection
// failures collapse into ErrBackendDown ("cannot reach backend"); timeouts
// surface as ErrTimeout; non-2xx responses keep the server-provided status
// and message.
//
// # Key Types
//
//   - Client: HTTP client covering the agent, voice, voyage, tool and
//     liveness endpoints
//   - ClientError: typed error with an ErrorType category
//   - Observer: hook receiving pre-request and post-response observations
//
// # Usage
//
//	client := api.NewClient()
//	resp, err := client.AskQuestion(ctx, "laytime for 40k MT at 8k MT/day?")
//	if err != nil {
//	    if api.IsBackendDown(err) {
//	        // show the fixed connectivity message
//	    }
//	    return err
//	}
//	fmt.Println(resp.Answer)
//
// Standard requests time out after 30 seconds; agent queries, which can run
// multi-step tool chains server-side, get 60 seconds.
package api
