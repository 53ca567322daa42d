package grpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Server gRPC服务器(含健康检查)
type Server struct {
	srv    *grpc.Server
	health *health.Server
	log    *zap.Logger
}

// NewServer 创建gRPC服务器并注册CatalogService和健康检查
func NewServer(catalog CatalogServer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(log),
			loggingInterceptor(log),
		),
		grpc.MaxRecvMsgSize(4*1024*1024),
	)
	RegisterCatalogServer(srv, catalog)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{srv: srv, health: hs, log: log}
}

// Serve 在lis上提供服务,直到Stop
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC服务启动", zap.String("addr", lis.Addr().String()))
	if err := s.srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC服务异常退出: %w", err)
	}
	return nil
}

// Stop 优雅关闭:先标记NOT_SERVING,再等待进行中的请求完成
// ctx超时后强制关闭
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.srv.Stop()
	}
}

// toStatus 业务错误 → gRPC状态码
func toStatus(err error) error {
	appErr := apperrors.GetAppError(err)
	code := codes.Internal
	switch appErr.HTTPStatus() {
	case http.StatusBadRequest:
		code = codes.InvalidArgument
	case http.StatusNotFound:
		code = codes.NotFound
	case http.StatusServiceUnavailable:
		code = codes.Unavailable
	}
	return status.Error(code, appErr.Message)
}

func loggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("latency", time.Since(start)),
		}
		if code == codes.Internal || code == codes.Unknown {
			log.Error("gRPC请求", append(fields, zap.Error(err))...)
		} else {
			log.Info("gRPC请求", fields...)
		}
		return resp, err
	}
}

func recoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("gRPC panic恢复", zap.Any("panic", r), zap.String("method", info.FullMethod), zap.Stack("stack"))
				err = status.Error(codes.Internal, apperrors.ErrInternal.Message)
			}
		}()
		return handler(ctx, req)
	}
}
