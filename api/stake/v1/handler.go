package stakev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
// Interceptors see the typed request and response.
func unaryHandler[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := decodeRequest(dec, in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return encodeResponse(call(srv.(S), ctx, in))
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return encodeResponse(interceptor(ctx, in, info, handler))
	}
}

func decodeRequest(dec func(any) error, in any) error {
	wire, err := newWire(in)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	if err := dec(wire); err != nil {
		return err
	}
	if err := fromWire(wire, in); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func encodeResponse(resp any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	wire, err := toWire(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wire, nil
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	wireIn, err := toWire(in)
	if err != nil {
		return nil, err
	}
	out := new(Resp)
	wireOut, err := newWire(out)
	if err != nil {
		return nil, err
	}
	if err := cc.Invoke(ctx, method, wireIn, wireOut, opts...); err != nil {
		return nil, err
	}
	if err := fromWire(wireOut, out); err != nil {
		return nil, err
	}
	return out, nil
}
