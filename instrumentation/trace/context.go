// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"strconv"
	"time"
)

type entryPointKeyType string

const entryPointKey entryPointKeyType = "ep"

const (
	RequestId            = "request-id"
	RequestTraceName     = "X-Counter-Trace-Name"
	RequestTraceId       = "X-Counter-Trace-Id"
	RequestTraceCreation = "X-Counter-Trace-Created"
)

type Context struct {
	created   time.Time
	name      string
	requestId string
}

func NewContext(parent context.Context, name string) context.Context {
	now := time.Now()
	ep := &Context{
		name:      name,
		created:   now,
		requestId: fmt.Sprintf("%s-%d", name, now.UnixNano()),
	}
	return context.WithValue(parent, entryPointKey, ep)
}

func FromContext(ctx context.Context) (e *Context, ok bool) {
	e, ok = ctx.Value(entryPointKey).(*Context)
	return
}

func (c *Context) RequestId() string {
	return c.requestId
}

func (c *Context) NestedFields() []*log.Field {
	if c == nil {
		return nil
	}

	return []*log.Field{
		log.String("entry-point", c.name),
		log.String(RequestId, c.requestId),
	}
}

// WriteTraceToRequest lets a server continue the trace started by its client
func (c *Context) WriteTraceToRequest(r *http.Request) {
	r.Header.Set(RequestTraceName, c.name)
	r.Header.Set(RequestTraceId, c.requestId)
	r.Header.Set(RequestTraceCreation, strconv.FormatInt(c.created.UnixNano(), 10))
}

// NewFromRequest continues a trace written by WriteTraceToRequest, or starts a new one named name
func NewFromRequest(parent context.Context, r *http.Request, name string) context.Context {
	requestId := r.Header.Get(RequestTraceId)
	created, err := strconv.ParseInt(r.Header.Get(RequestTraceCreation), 10, 64)
	if requestId == "" || err != nil {
		return NewContext(parent, name)
	}

	ep := &Context{
		name:      r.Header.Get(RequestTraceName),
		created:   time.Unix(0, created),
		requestId: requestId,
	}
	return context.WithValue(parent, entryPointKey, ep)
}

func LogFieldFrom(ctx context.Context) *log.Field {
	if trace, ok := FromContext(ctx); ok {
		return &log.Field{Key: "trace", Nested: trace, Type: log.AggregateType}
	} else {
		return log.String("trace", "NO-CONTEXT")
	}
}
