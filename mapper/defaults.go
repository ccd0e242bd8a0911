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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC projects HTTP statuses carried by basic errors and responses
// onto canonical gRPC codes. Statuses missing here fall back by class.
var defaultGRPC = map[int]codes.Code{
	// 2xx/3xx are successes for gRPC.
	http.StatusOK:        codes.OK,
	http.StatusCreated:   codes.OK,
	http.StatusAccepted:  codes.OK,
	http.StatusNoContent: codes.OK,

	// 4xx: caller-side problems.
	http.StatusBadRequest:           codes.InvalidArgument,
	http.StatusUnauthorized:         codes.Unauthenticated,
	http.StatusForbidden:            codes.PermissionDenied,
	http.StatusNotFound:             codes.NotFound,
	http.StatusGone:                 codes.NotFound, // no gRPC equivalent of 410
	http.StatusMethodNotAllowed:     codes.Unimplemented,
	http.StatusRequestTimeout:       codes.DeadlineExceeded,
	http.StatusConflict:             codes.Aborted,
	http.StatusUnsupportedMediaType: codes.InvalidArgument,
	http.StatusUnprocessableEntity:  codes.InvalidArgument,
	http.StatusTooManyRequests:      codes.ResourceExhausted,
	499:                             codes.Canceled, // nginx "client closed request"

	// Preconditions and limits.
	http.StatusPreconditionFailed:           codes.FailedPrecondition,
	http.StatusPreconditionRequired:         codes.FailedPrecondition,
	http.StatusTooEarly:                     codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge:        codes.ResourceExhausted,
	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,

	// 5xx: server and dependency problems.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}
