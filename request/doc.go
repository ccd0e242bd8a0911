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

// Package request provides the inbound envelope shared by services:
// identifiers, a typed payload, concurrency-safe headers and a credential
// slot, plus payload validation.
//
//	req := request.NewWithID("r-1", CreateOrder{SKU: "A-1", Qty: 2})
//	req.AddHeader("X-Trace", traceID)
//	req.SetCredential(credential.NewGeneric(userID))
//	if err := request.Validate(ctx, req); err != nil {
//	    return nil, err // *requests.Error, status 400
//	}
package request
