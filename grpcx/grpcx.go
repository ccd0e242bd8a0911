/*
   Copyright 2025 The Nishisan Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
	"nishisan.dev/requests"
	"nishisan.dev/requests/adapter"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/config"
	"nishisan.dev/requests/mapper"
	"nishisan.dev/requests/request"
)

// HTTPStatusHeader carries the HTTP status of a successful response (or the
// resolved HTTP status of an error) to gateways translating gRPC to HTTP.
const HTTPStatusHeader = "x-http-status"

// ErrorInfo metadata keys set by the interceptor besides the details.
const (
	MetaHTTPStatus = "http_status"
	MetaTraceID    = "trace_id"
)

// Extras holds optional data attached to error statuses next to the error's
// own kind, details and request.
type Extras struct {
	// Domain is the ErrorInfo domain, typically the service name.
	Domain string

	// RetryAfter, when positive, is sent as RetryInfo.
	RetryAfter time.Duration

	// Links are sent as Help.
	Links []*errdetails.Help_Link
}

// MetaFn extracts Extras from the call context and the error.
type MetaFn func(ctx context.Context, err apis.BasicError) Extras

type options struct {
	enabled bool
	metaFn  MetaFn
	logger  *zerolog.Logger
}

// Option configures the interceptor.
type Option func(*options)

// WithConfig applies the adapter switches. When disabled, no status header
// is sent and every basic error becomes codes.Internal.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.enabled = cfg.Enabled }
}

// WithMetaFn sets the Extras provider.
func WithMetaFn(fn MetaFn) Option {
	return func(o *options) { o.metaFn = fn }
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that applies
// response statuses and maps basic errors to rich gRPC statuses.
//
// On success, a response carrying a positive status has it mirrored into
// the HTTPStatusHeader header. On failure, a basic error (returned or thrown)
// becomes a status whose code is resolved by m, with these details:
//
//   - ErrorInfo: kind as reason, details flattened to strings as metadata;
//   - Struct: the details as structured JSON-like values;
//   - BadRequest: one field violation per validation failure;
//   - RequestInfo: the id of the originating request;
//   - RetryInfo and Help, when Extras provide them.
//
// Other errors pass through untouched. A nil m uses mapper.Default.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}
	o := options{enabled: config.DefaultEnabled, logger: &log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metaFn == nil {
		o.metaFn = func(context.Context, apis.BasicError) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer requests.Recover(func(rt *requests.RuntimeError) {
			resp, err = nil, o.toStatus(ctx, m, info, rt)
		})

		resp, err = handler(ctx, req)
		if err != nil {
			return nil, o.toStatus(ctx, m, info, err)
		}
		if !o.enabled {
			return resp, nil
		}
		if code, ok := adapter.StatusOf(resp); ok {
			if herr := grpc.SetHeader(ctx, metadata.Pairs(HTTPStatusHeader, strconv.Itoa(code))); herr != nil {
				o.logger.Debug().Err(herr).Int("status", code).Msg("status not applied: response already committed")
			}
		}
		return resp, nil
	}
}

func (o *options) toStatus(ctx context.Context, m apis.Mapper, info *grpc.UnaryServerInfo, err error) error {
	var be apis.BasicError
	if !errors.As(err, &be) {
		return err
	}

	st := adapter.Resolve(m, err)
	if !o.enabled {
		st = apis.Status{HTTP: 500, GRPC: codes.Internal}
	}
	if st.GRPC == codes.OK {
		// A basic error is never a success on the wire.
		st.GRPC = codes.Unknown
	}
	if st.GRPC == codes.Internal || st.HTTP >= 500 {
		ev := o.logger.Error().Interface("error", adapter.ToDescriptor(err, st))
		if info != nil {
			ev = ev.Str("method", info.FullMethod)
		}
		if d := be.Details(); len(d) > 0 {
			ev = ev.Interface("details", d)
		}
		ev.Msg("request failed")
	}
	if herr := grpc.SetHeader(ctx, metadata.Pairs(HTTPStatusHeader, strconv.Itoa(st.HTTP))); herr != nil {
		o.logger.Debug().Err(herr).Msg("http status header not sent")
	}

	ex := o.metaFn(ctx, be)
	base := status.New(st.GRPC, be.Message())
	with, derr := base.WithDetails(details(be, st, ex)...)
	if derr != nil {
		o.logger.Debug().Err(derr).Msg("status details dropped")
		return base.Err()
	}
	return with.Err()
}

func details(be apis.BasicError, st apis.Status, ex Extras) []protoadapt.MessageV1 {
	md := map[string]string{MetaHTTPStatus: strconv.Itoa(st.HTTP)}
	for k, v := range be.Details() {
		if s, err := cast.ToStringE(v); err == nil {
			md[k] = s
		}
	}
	req := be.Request()
	if req != nil && req.TraceID() != "" {
		md[MetaTraceID] = req.TraceID()
	}

	out := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason:   string(be.ErrorKind()),
		Domain:   ex.Domain,
		Metadata: md,
	}}
	if s, err := toStruct(be.Details()); err == nil && len(s.GetFields()) > 0 {
		out = append(out, s)
	}
	if br := badRequest(be.Details()); br != nil {
		out = append(out, br)
	}
	if req != nil {
		out = append(out, &errdetails.RequestInfo{RequestId: req.RequestID()})
	}
	if ex.RetryAfter > 0 {
		out = append(out, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)})
	}
	if len(ex.Links) > 0 {
		out = append(out, &errdetails.Help{Links: ex.Links})
	}
	return out
}

// toStruct converts details to a protobuf Struct through their JSON form,
// so any JSON-encodable value survives.
func toStruct(d map[string]any) (*structpb.Struct, error) {
	if len(d) == 0 {
		return nil, errors.New("no details")
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}
	return structpb.NewStruct(generic)
}

func badRequest(d map[string]any) *errdetails.BadRequest {
	vs, ok := d[request.ViolationsKey].([]apis.Violation)
	if !ok || len(vs) == 0 {
		return nil
	}
	br := &errdetails.BadRequest{}
	for _, v := range vs {
		desc := v.Rule
		if v.Param != "" {
			desc = fmt.Sprintf("%s=%s", v.Rule, v.Param)
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: desc,
		})
	}
	return br
}

// Info is what a client can read back from a status built by the
// interceptor.
type Info struct {
	Kind       string
	Domain     string
	HTTPStatus int
	Metadata   map[string]string
	Details    map[string]any
	RequestID  string
	Violations []*errdetails.BadRequest_FieldViolation
}

// ExtractInfo reads the details attached by UnaryServerInterceptor from a
// gRPC status error. ok is false when err carries no ErrorInfo.
func ExtractInfo(err error) (Info, bool) {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return Info{}, false
	}
	var (
		info  Info
		found bool
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			found = true
			info.Kind = v.GetReason()
			info.Domain = v.GetDomain()
			info.Metadata = v.GetMetadata()
			info.HTTPStatus = cast.ToInt(v.GetMetadata()[MetaHTTPStatus])
		case *structpb.Struct:
			info.Details = v.AsMap()
		case *errdetails.RequestInfo:
			info.RequestID = v.GetRequestId()
		case *errdetails.BadRequest:
			info.Violations = v.GetFieldViolations()
		}
	}
	return info, found
}
