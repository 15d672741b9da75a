// Package naming converts identifier casings and screens the loose name
// strings that flow through pipeline tools.
//
// The snake/camel/Pascal conversions follow the usual word-boundary rules:
// an uppercase run followed by a lowercase letter starts a new word, so
// "HTTPResponse" becomes "http_response" and "test123Value" becomes
// "test123_value".
package naming
