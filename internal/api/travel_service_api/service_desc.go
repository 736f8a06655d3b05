package travel_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "travelapp.v1.TravelService"

// TravelServiceServer is the server API for the travel service. Requests and
// responses are free-form protobuf Structs.
type TravelServiceServer interface {
	SearchFlights(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFlight(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(TravelServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodHandler(name string, call unaryMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TravelServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + name,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TravelServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TravelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchFlights", Handler: methodHandler("SearchFlights", TravelServiceServer.SearchFlights)},
		{MethodName: "GetFlight", Handler: methodHandler("GetFlight", TravelServiceServer.GetFlight)},
		{MethodName: "CreateBooking", Handler: methodHandler("CreateBooking", TravelServiceServer.CreateBooking)},
		{MethodName: "GetBooking", Handler: methodHandler("GetBooking", TravelServiceServer.GetBooking)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "travelapp/v1/travel.proto",
}

func RegisterTravelServiceServer(s grpc.ServiceRegistrar, srv TravelServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// TravelServiceClient is the client API for the travel service.
type TravelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTravelServiceClient(cc grpc.ClientConnInterface) *TravelServiceClient {
	return &TravelServiceClient{cc: cc}
}

func (c *TravelServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TravelServiceClient) SearchFlights(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "SearchFlights", in, opts...)
}

func (c *TravelServiceClient) GetFlight(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetFlight", in, opts...)
}

func (c *TravelServiceClient) CreateBooking(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CreateBooking", in, opts...)
}

func (c *TravelServiceClient) GetBooking(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetBooking", in, opts...)
}
