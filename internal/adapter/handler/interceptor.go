package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rl1809/sku-pricing/internal/logger"
)

const requestIDHeader = "x-request-id"

// requestID reuses the caller's x-request-id or generates a new one.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.New().String()
}

func UnaryLoggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		id := requestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, id))

		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, id, start, err)
		return resp, err
	}
}

func StreamLoggingInterceptor(log *logger.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		id := requestID(ss.Context())
		_ = ss.SetHeader(metadata.Pairs(requestIDHeader, id))

		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, id, start, err)
		return err
	}
}

func logCall(log *logger.Logger, method, id string, start time.Time, err error) {
	st := status.Convert(err)
	fields := []interface{}{
		"method", method,
		"request_id", id,
		"code", st.Code().String(),
		"duration", time.Since(start),
	}
	if err != nil {
		log.Warnw("grpc call failed", append(fields, "error", st.Message())...)
		return
	}
	log.Debugw("grpc call", fields...)
}
