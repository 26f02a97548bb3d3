// Package emailcheck serves the endpoint the email field posts to while the
// user types. It reads the Datastar signals sent with the request, checks the
// email signal and answers with a patch-signals event that toggles the
// field's error flag.
//
// The default handler accepts POST only and treats an empty address as valid
// so the error stays hidden until something has been typed.
package emailcheck
