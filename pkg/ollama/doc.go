// Package ollama provides a Go client for the Ollama generate API.
//
// The client speaks the /api/generate protocol: JSON POST requests, either a
// single complete JSON response or a newline-delimited stream of partial
// responses, and an opaque conversation context threaded from each response
// into the next request.
//
// # Basic Usage
//
//	client := ollama.NewClient(ollama.WithModel("llama3.2"))
//
//	resp, err := client.Generate.Create(ctx, ollama.NewGenerateRequest("Why is the sky blue?"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Response)
//
// Each successful call replaces the client's conversation context with the
// one carried by the response, so consecutive calls on one client form one
// conversation. Calls must be issued sequentially; a Client is not safe for
// concurrent use.
//
// # Streaming
//
// Streaming methods return iter.Seq2 iterators usable with Go 1.23+ range:
//
//	for event, err := range client.Generate.CreateStream(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(event.Response)
//	}
//
// A decode failure on one line surfaces as an error item without ending the
// sequence; stopping on the first error (as above) is the usual policy, but
// the consumer may also skip and continue. Breaking out of the loop releases
// the connection.
//
// # Error Handling
//
//	resp, err := client.Generate.Create(ctx, req)
//	if err != nil {
//	    if e, ok := ollama.AsError(err); ok && e.IsTransport() {
//	        // service unreachable or returned non-2xx
//	    }
//	    return err
//	}
//
// # Configuration
//
//	client := ollama.NewClient(
//	    ollama.WithBaseURL("http://localhost:11434"),
//	    ollama.WithModel("mistral"),
//	    ollama.WithSystem("You answer in one sentence."),
//	    ollama.WithTimeout(60*time.Second),
//	)
package ollama
