package interceptor

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"moto-rentals-backend/internal/logger"
)

// Unary returns a server interceptor that logs each RPC and turns panics into
// codes.Internal.
func Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered in rpc", "method", info.FullMethod, "panic", fmt.Sprintf("%v", r))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
			logger.Debug("rpc",
				"method", info.FullMethod,
				"code", status.Code(err).String(),
				"duration", time.Since(start),
			)
		}()
		return handler(ctx, req)
	}
}
