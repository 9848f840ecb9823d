// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Centralized HTTP policy defaults and bounds
const (
	DefaultTimeout             = 30 * time.Second
	DefaultRetryMaxAttempts    = 4
	DefaultRetryInitialBackoff = 500 * time.Millisecond
	DefaultRetryMaxBackoff     = 5 * time.Second
	DefaultUserAgent           = "ywh2bt"

	minTimeout  = time.Second
	maxTimeout  = 600 * time.Second
	minAttempts = 1
	maxAttempts = 10
	minBackoff  = 100 * time.Millisecond
	maxBackoff  = 10 * time.Minute
)

// HTTPOptions is the retry and timeout policy shared by all tracker clients.
// Zero fields take the defaults.
type HTTPOptions struct {
	Timeout             time.Duration
	RetryMaxAttempts    int
	RetryInitialBackoff time.Duration
	RetryMaxBackoff     time.Duration
	UserAgent           string
}

// OptionError reports an HTTP option outside its bounds.
type OptionError struct {
	Option string
	Detail string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Detail)
}

func (o HTTPOptions) withDefaults() HTTPOptions {
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RetryMaxAttempts == 0 {
		o.RetryMaxAttempts = DefaultRetryMaxAttempts
	}
	if o.RetryInitialBackoff == 0 {
		o.RetryInitialBackoff = DefaultRetryInitialBackoff
	}
	if o.RetryMaxBackoff == 0 {
		o.RetryMaxBackoff = DefaultRetryMaxBackoff
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	return o
}

// Validate checks every option against its bounds after applying defaults.
func (o HTTPOptions) Validate() error {
	o = o.withDefaults()
	var errs []error
	if o.Timeout < minTimeout || o.Timeout > maxTimeout {
		errs = append(errs, &OptionError{Option: "timeout", Detail: fmt.Sprintf("must be between %s and %s; got %s", minTimeout, maxTimeout, o.Timeout)})
	}
	if o.RetryMaxAttempts < minAttempts || o.RetryMaxAttempts > maxAttempts {
		errs = append(errs, &OptionError{Option: "retry max attempts", Detail: fmt.Sprintf("must be between %d and %d; got %d", minAttempts, maxAttempts, o.RetryMaxAttempts)})
	}
	if o.RetryInitialBackoff < minBackoff || o.RetryInitialBackoff > maxBackoff {
		errs = append(errs, &OptionError{Option: "retry initial backoff", Detail: fmt.Sprintf("must be between %s and %s; got %s", minBackoff, maxBackoff, o.RetryInitialBackoff)})
	}
	if o.RetryMaxBackoff < minBackoff || o.RetryMaxBackoff > maxBackoff {
		errs = append(errs, &OptionError{Option: "retry max backoff", Detail: fmt.Sprintf("must be between %s and %s; got %s", minBackoff, maxBackoff, o.RetryMaxBackoff)})
	}
	if o.RetryInitialBackoff > o.RetryMaxBackoff {
		errs = append(errs, &OptionError{Option: "retry initial backoff", Detail: "must be less than or equal to retry max backoff"})
	}
	return errors.Join(errs...)
}

// NewHTTPClient builds a retrying HTTP client. TLS certificates are not
// verified when verify is false.
func NewHTTPClient(opts HTTPOptions, verify bool) (*http.Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	transport := cleanhttp.DefaultPooledTransport()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !verify, // #nosec G402 -- opt-out exposed as the tracker "verify" attribute
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = opts.RetryMaxAttempts
	rc.RetryWaitMin = opts.RetryInitialBackoff
	rc.RetryWaitMax = opts.RetryMaxBackoff
	// keep default CheckRetry (retries on 429/5xx and honors Retry-After)
	rc.Logger = nil
	httpClient := rc.StandardClient()
	httpClient.Timeout = opts.Timeout
	return httpClient, nil
}
