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

package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nishisan.dev/requests"
	"nishisan.dev/requests/kind"
	"nishisan.dev/requests/request"
)

// Bind decodes the JSON body of c into a request envelope and validates it.
// Headers are copied (first value per name) and the request id and trace id
// are taken from request.HeaderRequestID and request.HeaderTraceID.
//
// A body that does not decode yields a 400 basic error of kind
// request.malformed; a body that fails validation yields the error of
// request.Validate.
func Bind[T any](c *gin.Context) (*request.Request[T], error) {
	var payload T
	hdr := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		if len(values) > 0 {
			hdr[name] = values[0]
		}
	}
	req := request.FromHeaders(payload, hdr)

	if err := c.ShouldBindJSON(&payload); err != nil {
		return req, requests.Wrap(err, "malformed request body",
			requests.WithStatus(http.StatusBadRequest),
			requests.WithKind(kind.Malformed),
			requests.WithRequest(req),
		)
	}
	req.SetPayload(payload)
	if err := request.Validate(c.Request.Context(), req); err != nil {
		return req, err
	}
	return req, nil
}
