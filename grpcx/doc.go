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

// Package grpcx adapts basic errors and response envelopes to gRPC servers.
//
// UnaryServerInterceptor resolves the gRPC code of a basic error through an
// apis.Mapper and attaches its kind, details and request as standard
// google.rpc error details. Clients read them back with ExtractInfo.
//
// Usage:
//
//	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
//	    grpcx.UnaryServerInterceptor(nil, grpcx.WithConfig(config.MustLoad())),
//	))
package grpcx
