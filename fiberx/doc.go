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

// Package fiberx is the fiber (v2) response status adapter.
//
//	app := fiber.New(fiberx.AppConfig(cfg))
//	app.Use(fiberx.StatusAdvice(cfg))
//	app.Post("/orders", func(c *fiber.Ctx) error {
//	    req, err := fiberx.Bind[CreateOrder](c)
//	    if err != nil {
//	        return err
//	    }
//	    res := response.FromRequest(req, place(req.Payload()))
//	    res.SetStatusCode(fiber.StatusCreated)
//	    return fiberx.Respond(c, res)
//	})
package fiberx
