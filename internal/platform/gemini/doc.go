// Package gemini implements generation.Provider on top of the Google Gen AI
// SDK. System messages become the request's system instruction and the
// remaining messages are sent as user content.
package gemini
