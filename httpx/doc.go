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

// Package httpx is the net/http response status adapter.
//
//	w := httpx.New(config.MustLoad())
//	mux.Handle("/orders", w.Handler(func(r *http.Request) (any, error) {
//	    res := response.New(order)
//	    res.SetStatusCode(http.StatusCreated)
//	    return res, nil
//	}))
package httpx
