package ssml

import "fmt"

type options struct {
	lang          string
	onLangFailure string
}

// Option configures a single call to Convert.
type Option func(*options) error

// Lang returns an Option that sets the xml:lang attribute of the speak root
// element. The default is "en-US".
func Lang(lang string) Option {
	return func(o *options) error {
		if lang == "" {
			return fmt.Errorf("ssml: lang must not be empty")
		}
		o.lang = lang
		return nil
	}
}

// OnLangFailure returns an Option that sets the onlangfailure attribute of
// the speak root element, which tells the engine what to do when it cannot
// speak the document language. The default is "processorchoice".
func OnLangFailure(behavior string) Option {
	return func(o *options) error {
		if behavior == "" {
			return fmt.Errorf("ssml: onlangfailure behavior must not be empty")
		}
		o.onLangFailure = behavior
		return nil
	}
}
