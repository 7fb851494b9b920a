// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: angzarr.proto

package angzarr

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AggregateService_GetDescriptor_FullMethodName    = "/angzarr.AggregateService/GetDescriptor"
	AggregateService_Handle_FullMethodName           = "/angzarr.AggregateService/Handle"
	AggregateService_HandleSync_FullMethodName       = "/angzarr.AggregateService/HandleSync"
	AggregateService_HandleRevocation_FullMethodName = "/angzarr.AggregateService/HandleRevocation"
)

// AggregateServiceClient is the client API for AggregateService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AggregateService hosts event-sourced command handling for one domain.
type AggregateServiceClient interface {
	GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error)
	Handle(ctx context.Context, in *ContextualCommand, opts ...grpc.CallOption) (*BusinessResponse, error)
	HandleSync(ctx context.Context, in *ContextualCommand, opts ...grpc.CallOption) (*BusinessResponse, error)
	HandleRevocation(ctx context.Context, in *Notification, opts ...grpc.CallOption) (*RevocationResponse, error)
}

type aggregateServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAggregateServiceClient(cc grpc.ClientConnInterface) AggregateServiceClient {
	return &aggregateServiceClient{cc}
}

func (c *aggregateServiceClient) GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentDescriptor)
	err := c.cc.Invoke(ctx, AggregateService_GetDescriptor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aggregateServiceClient) Handle(ctx context.Context, in *ContextualCommand, opts ...grpc.CallOption) (*BusinessResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BusinessResponse)
	err := c.cc.Invoke(ctx, AggregateService_Handle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aggregateServiceClient) HandleSync(ctx context.Context, in *ContextualCommand, opts ...grpc.CallOption) (*BusinessResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BusinessResponse)
	err := c.cc.Invoke(ctx, AggregateService_HandleSync_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aggregateServiceClient) HandleRevocation(ctx context.Context, in *Notification, opts ...grpc.CallOption) (*RevocationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevocationResponse)
	err := c.cc.Invoke(ctx, AggregateService_HandleRevocation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateServiceServer is the server API for AggregateService service.
// All implementations must embed UnimplementedAggregateServiceServer
// for forward compatibility.
//
// AggregateService hosts event-sourced command handling for one domain.
type AggregateServiceServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Handle(context.Context, *ContextualCommand) (*BusinessResponse, error)
	HandleSync(context.Context, *ContextualCommand) (*BusinessResponse, error)
	HandleRevocation(context.Context, *Notification) (*RevocationResponse, error)
	mustEmbedUnimplementedAggregateServiceServer()
}

// UnimplementedAggregateServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAggregateServiceServer struct{}

func (UnimplementedAggregateServiceServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDescriptor not implemented")
}
func (UnimplementedAggregateServiceServer) Handle(context.Context, *ContextualCommand) (*BusinessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Handle not implemented")
}
func (UnimplementedAggregateServiceServer) HandleSync(context.Context, *ContextualCommand) (*BusinessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HandleSync not implemented")
}
func (UnimplementedAggregateServiceServer) HandleRevocation(context.Context, *Notification) (*RevocationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HandleRevocation not implemented")
}
func (UnimplementedAggregateServiceServer) mustEmbedUnimplementedAggregateServiceServer() {}
func (UnimplementedAggregateServiceServer) testEmbeddedByValue()                          {}

// UnsafeAggregateServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AggregateServiceServer will
// result in compilation errors.
type UnsafeAggregateServiceServer interface {
	mustEmbedUnimplementedAggregateServiceServer()
}

func RegisterAggregateServiceServer(s grpc.ServiceRegistrar, srv AggregateServiceServer) {
	// If the following call pancis, it indicates UnimplementedAggregateServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AggregateService_ServiceDesc, srv)
}

func _AggregateService_GetDescriptor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServiceServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AggregateService_GetDescriptor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServiceServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AggregateService_Handle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContextualCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServiceServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AggregateService_Handle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServiceServer).Handle(ctx, req.(*ContextualCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _AggregateService_HandleSync_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContextualCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServiceServer).HandleSync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AggregateService_HandleSync_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServiceServer).HandleSync(ctx, req.(*ContextualCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _AggregateService_HandleRevocation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Notification)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServiceServer).HandleRevocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AggregateService_HandleRevocation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServiceServer).HandleRevocation(ctx, req.(*Notification))
	}
	return interceptor(ctx, in, info, handler)
}

// AggregateService_ServiceDesc is the grpc.ServiceDesc for AggregateService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AggregateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.AggregateService",
	HandlerType: (*AggregateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDescriptor",
			Handler:    _AggregateService_GetDescriptor_Handler,
		},
		{
			MethodName: "Handle",
			Handler:    _AggregateService_Handle_Handler,
		},
		{
			MethodName: "HandleSync",
			Handler:    _AggregateService_HandleSync_Handler,
		},
		{
			MethodName: "HandleRevocation",
			Handler:    _AggregateService_HandleRevocation_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	SagaService_GetDescriptor_FullMethodName = "/angzarr.SagaService/GetDescriptor"
	SagaService_Prepare_FullMethodName       = "/angzarr.SagaService/Prepare"
	SagaService_Execute_FullMethodName       = "/angzarr.SagaService/Execute"
)

// SagaServiceClient is the client API for SagaService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SagaService translates events in a source domain into commands elsewhere,
// using the two-phase Prepare/Execute protocol.
type SagaServiceClient interface {
	GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error)
	Prepare(ctx context.Context, in *SagaPrepareRequest, opts ...grpc.CallOption) (*SagaPrepareResponse, error)
	Execute(ctx context.Context, in *SagaExecuteRequest, opts ...grpc.CallOption) (*SagaResponse, error)
}

type sagaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSagaServiceClient(cc grpc.ClientConnInterface) SagaServiceClient {
	return &sagaServiceClient{cc}
}

func (c *sagaServiceClient) GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentDescriptor)
	err := c.cc.Invoke(ctx, SagaService_GetDescriptor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sagaServiceClient) Prepare(ctx context.Context, in *SagaPrepareRequest, opts ...grpc.CallOption) (*SagaPrepareResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SagaPrepareResponse)
	err := c.cc.Invoke(ctx, SagaService_Prepare_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sagaServiceClient) Execute(ctx context.Context, in *SagaExecuteRequest, opts ...grpc.CallOption) (*SagaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SagaResponse)
	err := c.cc.Invoke(ctx, SagaService_Execute_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SagaServiceServer is the server API for SagaService service.
// All implementations must embed UnimplementedSagaServiceServer
// for forward compatibility.
//
// SagaService translates events in a source domain into commands elsewhere,
// using the two-phase Prepare/Execute protocol.
type SagaServiceServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Prepare(context.Context, *SagaPrepareRequest) (*SagaPrepareResponse, error)
	Execute(context.Context, *SagaExecuteRequest) (*SagaResponse, error)
	mustEmbedUnimplementedSagaServiceServer()
}

// UnimplementedSagaServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSagaServiceServer struct{}

func (UnimplementedSagaServiceServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDescriptor not implemented")
}
func (UnimplementedSagaServiceServer) Prepare(context.Context, *SagaPrepareRequest) (*SagaPrepareResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Prepare not implemented")
}
func (UnimplementedSagaServiceServer) Execute(context.Context, *SagaExecuteRequest) (*SagaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Execute not implemented")
}
func (UnimplementedSagaServiceServer) mustEmbedUnimplementedSagaServiceServer() {}
func (UnimplementedSagaServiceServer) testEmbeddedByValue()                     {}

// UnsafeSagaServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SagaServiceServer will
// result in compilation errors.
type UnsafeSagaServiceServer interface {
	mustEmbedUnimplementedSagaServiceServer()
}

func RegisterSagaServiceServer(s grpc.ServiceRegistrar, srv SagaServiceServer) {
	// If the following call pancis, it indicates UnimplementedSagaServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SagaService_ServiceDesc, srv)
}

func _SagaService_GetDescriptor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServiceServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SagaService_GetDescriptor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServiceServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SagaService_Prepare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SagaPrepareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServiceServer).Prepare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SagaService_Prepare_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServiceServer).Prepare(ctx, req.(*SagaPrepareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SagaService_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SagaExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SagaService_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServiceServer).Execute(ctx, req.(*SagaExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SagaService_ServiceDesc is the grpc.ServiceDesc for SagaService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SagaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.SagaService",
	HandlerType: (*SagaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDescriptor",
			Handler:    _SagaService_GetDescriptor_Handler,
		},
		{
			MethodName: "Prepare",
			Handler:    _SagaService_Prepare_Handler,
		},
		{
			MethodName: "Execute",
			Handler:    _SagaService_Execute_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	ProcessManagerService_GetDescriptor_FullMethodName = "/angzarr.ProcessManagerService/GetDescriptor"
	ProcessManagerService_Prepare_FullMethodName       = "/angzarr.ProcessManagerService/Prepare"
	ProcessManagerService_Handle_FullMethodName        = "/angzarr.ProcessManagerService/Handle"
)

// ProcessManagerServiceClient is the client API for ProcessManagerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProcessManagerService hosts stateful coordinators with their own event log.
type ProcessManagerServiceClient interface {
	GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error)
	Prepare(ctx context.Context, in *ProcessManagerPrepareRequest, opts ...grpc.CallOption) (*ProcessManagerPrepareResponse, error)
	Handle(ctx context.Context, in *ProcessManagerHandleRequest, opts ...grpc.CallOption) (*ProcessManagerHandleResponse, error)
}

type processManagerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProcessManagerServiceClient(cc grpc.ClientConnInterface) ProcessManagerServiceClient {
	return &processManagerServiceClient{cc}
}

func (c *processManagerServiceClient) GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentDescriptor)
	err := c.cc.Invoke(ctx, ProcessManagerService_GetDescriptor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processManagerServiceClient) Prepare(ctx context.Context, in *ProcessManagerPrepareRequest, opts ...grpc.CallOption) (*ProcessManagerPrepareResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessManagerPrepareResponse)
	err := c.cc.Invoke(ctx, ProcessManagerService_Prepare_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processManagerServiceClient) Handle(ctx context.Context, in *ProcessManagerHandleRequest, opts ...grpc.CallOption) (*ProcessManagerHandleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessManagerHandleResponse)
	err := c.cc.Invoke(ctx, ProcessManagerService_Handle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessManagerServiceServer is the server API for ProcessManagerService service.
// All implementations must embed UnimplementedProcessManagerServiceServer
// for forward compatibility.
//
// ProcessManagerService hosts stateful coordinators with their own event log.
type ProcessManagerServiceServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Prepare(context.Context, *ProcessManagerPrepareRequest) (*ProcessManagerPrepareResponse, error)
	Handle(context.Context, *ProcessManagerHandleRequest) (*ProcessManagerHandleResponse, error)
	mustEmbedUnimplementedProcessManagerServiceServer()
}

// UnimplementedProcessManagerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProcessManagerServiceServer struct{}

func (UnimplementedProcessManagerServiceServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDescriptor not implemented")
}
func (UnimplementedProcessManagerServiceServer) Prepare(context.Context, *ProcessManagerPrepareRequest) (*ProcessManagerPrepareResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Prepare not implemented")
}
func (UnimplementedProcessManagerServiceServer) Handle(context.Context, *ProcessManagerHandleRequest) (*ProcessManagerHandleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Handle not implemented")
}
func (UnimplementedProcessManagerServiceServer) mustEmbedUnimplementedProcessManagerServiceServer() {}
func (UnimplementedProcessManagerServiceServer) testEmbeddedByValue()                               {}

// UnsafeProcessManagerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProcessManagerServiceServer will
// result in compilation errors.
type UnsafeProcessManagerServiceServer interface {
	mustEmbedUnimplementedProcessManagerServiceServer()
}

func RegisterProcessManagerServiceServer(s grpc.ServiceRegistrar, srv ProcessManagerServiceServer) {
	// If the following call pancis, it indicates UnimplementedProcessManagerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProcessManagerService_ServiceDesc, srv)
}

func _ProcessManagerService_GetDescriptor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServiceServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessManagerService_GetDescriptor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServiceServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessManagerService_Prepare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessManagerPrepareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServiceServer).Prepare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessManagerService_Prepare_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServiceServer).Prepare(ctx, req.(*ProcessManagerPrepareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessManagerService_Handle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessManagerHandleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServiceServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessManagerService_Handle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServiceServer).Handle(ctx, req.(*ProcessManagerHandleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProcessManagerService_ServiceDesc is the grpc.ServiceDesc for ProcessManagerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProcessManagerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.ProcessManagerService",
	HandlerType: (*ProcessManagerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDescriptor",
			Handler:    _ProcessManagerService_GetDescriptor_Handler,
		},
		{
			MethodName: "Prepare",
			Handler:    _ProcessManagerService_Prepare_Handler,
		},
		{
			MethodName: "Handle",
			Handler:    _ProcessManagerService_Handle_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	ProjectorService_GetDescriptor_FullMethodName     = "/angzarr.ProjectorService/GetDescriptor"
	ProjectorService_Handle_FullMethodName            = "/angzarr.ProjectorService/Handle"
	ProjectorService_HandleSpeculative_FullMethodName = "/angzarr.ProjectorService/HandleSpeculative"
)

// ProjectorServiceClient is the client API for ProjectorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProjectorService derives read-side projections from observed events.
type ProjectorServiceClient interface {
	GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error)
	Handle(ctx context.Context, in *EventBook, opts ...grpc.CallOption) (*Projection, error)
	HandleSpeculative(ctx context.Context, in *EventBook, opts ...grpc.CallOption) (*Projection, error)
}

type projectorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProjectorServiceClient(cc grpc.ClientConnInterface) ProjectorServiceClient {
	return &projectorServiceClient{cc}
}

func (c *projectorServiceClient) GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentDescriptor)
	err := c.cc.Invoke(ctx, ProjectorService_GetDescriptor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectorServiceClient) Handle(ctx context.Context, in *EventBook, opts ...grpc.CallOption) (*Projection, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Projection)
	err := c.cc.Invoke(ctx, ProjectorService_Handle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectorServiceClient) HandleSpeculative(ctx context.Context, in *EventBook, opts ...grpc.CallOption) (*Projection, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Projection)
	err := c.cc.Invoke(ctx, ProjectorService_HandleSpeculative_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectorServiceServer is the server API for ProjectorService service.
// All implementations must embed UnimplementedProjectorServiceServer
// for forward compatibility.
//
// ProjectorService derives read-side projections from observed events.
type ProjectorServiceServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Handle(context.Context, *EventBook) (*Projection, error)
	HandleSpeculative(context.Context, *EventBook) (*Projection, error)
	mustEmbedUnimplementedProjectorServiceServer()
}

// UnimplementedProjectorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProjectorServiceServer struct{}

func (UnimplementedProjectorServiceServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDescriptor not implemented")
}
func (UnimplementedProjectorServiceServer) Handle(context.Context, *EventBook) (*Projection, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Handle not implemented")
}
func (UnimplementedProjectorServiceServer) HandleSpeculative(context.Context, *EventBook) (*Projection, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HandleSpeculative not implemented")
}
func (UnimplementedProjectorServiceServer) mustEmbedUnimplementedProjectorServiceServer() {}
func (UnimplementedProjectorServiceServer) testEmbeddedByValue()                          {}

// UnsafeProjectorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProjectorServiceServer will
// result in compilation errors.
type UnsafeProjectorServiceServer interface {
	mustEmbedUnimplementedProjectorServiceServer()
}

func RegisterProjectorServiceServer(s grpc.ServiceRegistrar, srv ProjectorServiceServer) {
	// If the following call pancis, it indicates UnimplementedProjectorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProjectorService_ServiceDesc, srv)
}

func _ProjectorService_GetDescriptor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectorServiceServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectorService_GetDescriptor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectorServiceServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProjectorService_Handle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EventBook)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectorServiceServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectorService_Handle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectorServiceServer).Handle(ctx, req.(*EventBook))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProjectorService_HandleSpeculative_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EventBook)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectorServiceServer).HandleSpeculative(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectorService_HandleSpeculative_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectorServiceServer).HandleSpeculative(ctx, req.(*EventBook))
	}
	return interceptor(ctx, in, info, handler)
}

// ProjectorService_ServiceDesc is the grpc.ServiceDesc for ProjectorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProjectorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.ProjectorService",
	HandlerType: (*ProjectorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDescriptor",
			Handler:    _ProjectorService_GetDescriptor_Handler,
		},
		{
			MethodName: "Handle",
			Handler:    _ProjectorService_Handle_Handler,
		},
		{
			MethodName: "HandleSpeculative",
			Handler:    _ProjectorService_HandleSpeculative_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	UpcasterService_GetDescriptor_FullMethodName = "/angzarr.UpcasterService/GetDescriptor"
	UpcasterService_Upcast_FullMethodName        = "/angzarr.UpcasterService/Upcast"
)

// UpcasterServiceClient is the client API for UpcasterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UpcasterService transforms old event versions during delivery.
type UpcasterServiceClient interface {
	GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error)
	Upcast(ctx context.Context, in *UpcastRequest, opts ...grpc.CallOption) (*UpcastResponse, error)
}

type upcasterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUpcasterServiceClient(cc grpc.ClientConnInterface) UpcasterServiceClient {
	return &upcasterServiceClient{cc}
}

func (c *upcasterServiceClient) GetDescriptor(ctx context.Context, in *GetDescriptorRequest, opts ...grpc.CallOption) (*ComponentDescriptor, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComponentDescriptor)
	err := c.cc.Invoke(ctx, UpcasterService_GetDescriptor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *upcasterServiceClient) Upcast(ctx context.Context, in *UpcastRequest, opts ...grpc.CallOption) (*UpcastResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpcastResponse)
	err := c.cc.Invoke(ctx, UpcasterService_Upcast_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpcasterServiceServer is the server API for UpcasterService service.
// All implementations must embed UnimplementedUpcasterServiceServer
// for forward compatibility.
//
// UpcasterService transforms old event versions during delivery.
type UpcasterServiceServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Upcast(context.Context, *UpcastRequest) (*UpcastResponse, error)
	mustEmbedUnimplementedUpcasterServiceServer()
}

// UnimplementedUpcasterServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUpcasterServiceServer struct{}

func (UnimplementedUpcasterServiceServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDescriptor not implemented")
}
func (UnimplementedUpcasterServiceServer) Upcast(context.Context, *UpcastRequest) (*UpcastResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Upcast not implemented")
}
func (UnimplementedUpcasterServiceServer) mustEmbedUnimplementedUpcasterServiceServer() {}
func (UnimplementedUpcasterServiceServer) testEmbeddedByValue()                         {}

// UnsafeUpcasterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UpcasterServiceServer will
// result in compilation errors.
type UnsafeUpcasterServiceServer interface {
	mustEmbedUnimplementedUpcasterServiceServer()
}

func RegisterUpcasterServiceServer(s grpc.ServiceRegistrar, srv UpcasterServiceServer) {
	// If the following call pancis, it indicates UnimplementedUpcasterServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UpcasterService_ServiceDesc, srv)
}

func _UpcasterService_GetDescriptor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpcasterServiceServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UpcasterService_GetDescriptor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpcasterServiceServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UpcasterService_Upcast_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpcastRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpcasterServiceServer).Upcast(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UpcasterService_Upcast_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpcasterServiceServer).Upcast(ctx, req.(*UpcastRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UpcasterService_ServiceDesc is the grpc.ServiceDesc for UpcasterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UpcasterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.UpcasterService",
	HandlerType: (*UpcasterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDescriptor",
			Handler:    _UpcasterService_GetDescriptor_Handler,
		},
		{
			MethodName: "Upcast",
			Handler:    _UpcasterService_Upcast_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	CommandGatewayService_Handle_FullMethodName     = "/angzarr.CommandGatewayService/Handle"
	CommandGatewayService_HandleSync_FullMethodName = "/angzarr.CommandGatewayService/HandleSync"
)

// CommandGatewayServiceClient is the client API for CommandGatewayService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CommandGatewayService is the gateway-side submission surface consumed by
// clients. The gateway loads the target's history, wraps the command in a
// ContextualCommand, and forwards it to the owning AggregateService.
type CommandGatewayServiceClient interface {
	Handle(ctx context.Context, in *CommandBook, opts ...grpc.CallOption) (*CommandResponse, error)
	HandleSync(ctx context.Context, in *CommandBook, opts ...grpc.CallOption) (*CommandResponse, error)
}

type commandGatewayServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCommandGatewayServiceClient(cc grpc.ClientConnInterface) CommandGatewayServiceClient {
	return &commandGatewayServiceClient{cc}
}

func (c *commandGatewayServiceClient) Handle(ctx context.Context, in *CommandBook, opts ...grpc.CallOption) (*CommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, CommandGatewayService_Handle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commandGatewayServiceClient) HandleSync(ctx context.Context, in *CommandBook, opts ...grpc.CallOption) (*CommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, CommandGatewayService_HandleSync_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CommandGatewayServiceServer is the server API for CommandGatewayService service.
// All implementations must embed UnimplementedCommandGatewayServiceServer
// for forward compatibility.
//
// CommandGatewayService is the gateway-side submission surface consumed by
// clients. The gateway loads the target's history, wraps the command in a
// ContextualCommand, and forwards it to the owning AggregateService.
type CommandGatewayServiceServer interface {
	Handle(context.Context, *CommandBook) (*CommandResponse, error)
	HandleSync(context.Context, *CommandBook) (*CommandResponse, error)
	mustEmbedUnimplementedCommandGatewayServiceServer()
}

// UnimplementedCommandGatewayServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCommandGatewayServiceServer struct{}

func (UnimplementedCommandGatewayServiceServer) Handle(context.Context, *CommandBook) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Handle not implemented")
}
func (UnimplementedCommandGatewayServiceServer) HandleSync(context.Context, *CommandBook) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HandleSync not implemented")
}
func (UnimplementedCommandGatewayServiceServer) mustEmbedUnimplementedCommandGatewayServiceServer() {}
func (UnimplementedCommandGatewayServiceServer) testEmbeddedByValue()                               {}

// UnsafeCommandGatewayServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CommandGatewayServiceServer will
// result in compilation errors.
type UnsafeCommandGatewayServiceServer interface {
	mustEmbedUnimplementedCommandGatewayServiceServer()
}

func RegisterCommandGatewayServiceServer(s grpc.ServiceRegistrar, srv CommandGatewayServiceServer) {
	// If the following call pancis, it indicates UnimplementedCommandGatewayServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CommandGatewayService_ServiceDesc, srv)
}

func _CommandGatewayService_Handle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommandBook)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommandGatewayServiceServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CommandGatewayService_Handle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommandGatewayServiceServer).Handle(ctx, req.(*CommandBook))
	}
	return interceptor(ctx, in, info, handler)
}

func _CommandGatewayService_HandleSync_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommandBook)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommandGatewayServiceServer).HandleSync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CommandGatewayService_HandleSync_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommandGatewayServiceServer).HandleSync(ctx, req.(*CommandBook))
	}
	return interceptor(ctx, in, info, handler)
}

// CommandGatewayService_ServiceDesc is the grpc.ServiceDesc for CommandGatewayService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CommandGatewayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.CommandGatewayService",
	HandlerType: (*CommandGatewayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Handle",
			Handler:    _CommandGatewayService_Handle_Handler,
		},
		{
			MethodName: "HandleSync",
			Handler:    _CommandGatewayService_HandleSync_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "angzarr.proto",
}

const (
	EventQueryService_GetEventBook_FullMethodName = "/angzarr.EventQueryService/GetEventBook"
	EventQueryService_GetEvents_FullMethodName    = "/angzarr.EventQueryService/GetEvents"
)

// EventQueryServiceClient is the client API for EventQueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// EventQueryService is the gateway-side retrieval surface consumed by clients.
type EventQueryServiceClient interface {
	GetEventBook(ctx context.Context, in *Query, opts ...grpc.CallOption) (*EventBook, error)
	GetEvents(ctx context.Context, in *Query, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventBook], error)
}

type eventQueryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEventQueryServiceClient(cc grpc.ClientConnInterface) EventQueryServiceClient {
	return &eventQueryServiceClient{cc}
}

func (c *eventQueryServiceClient) GetEventBook(ctx context.Context, in *Query, opts ...grpc.CallOption) (*EventBook, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EventBook)
	err := c.cc.Invoke(ctx, EventQueryService_GetEventBook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventQueryServiceClient) GetEvents(ctx context.Context, in *Query, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventBook], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &EventQueryService_ServiceDesc.Streams[0], EventQueryService_GetEvents_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Query, EventBook]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type EventQueryService_GetEventsClient = grpc.ServerStreamingClient[EventBook]

// EventQueryServiceServer is the server API for EventQueryService service.
// All implementations must embed UnimplementedEventQueryServiceServer
// for forward compatibility.
//
// EventQueryService is the gateway-side retrieval surface consumed by clients.
type EventQueryServiceServer interface {
	GetEventBook(context.Context, *Query) (*EventBook, error)
	GetEvents(*Query, grpc.ServerStreamingServer[EventBook]) error
	mustEmbedUnimplementedEventQueryServiceServer()
}

// UnimplementedEventQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEventQueryServiceServer struct{}

func (UnimplementedEventQueryServiceServer) GetEventBook(context.Context, *Query) (*EventBook, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEventBook not implemented")
}
func (UnimplementedEventQueryServiceServer) GetEvents(*Query, grpc.ServerStreamingServer[EventBook]) error {
	return status.Errorf(codes.Unimplemented, "method GetEvents not implemented")
}
func (UnimplementedEventQueryServiceServer) mustEmbedUnimplementedEventQueryServiceServer() {}
func (UnimplementedEventQueryServiceServer) testEmbeddedByValue()                           {}

// UnsafeEventQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EventQueryServiceServer will
// result in compilation errors.
type UnsafeEventQueryServiceServer interface {
	mustEmbedUnimplementedEventQueryServiceServer()
}

func RegisterEventQueryServiceServer(s grpc.ServiceRegistrar, srv EventQueryServiceServer) {
	// If the following call pancis, it indicates UnimplementedEventQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EventQueryService_ServiceDesc, srv)
}

func _EventQueryService_GetEventBook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Query)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventQueryServiceServer).GetEventBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EventQueryService_GetEventBook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventQueryServiceServer).GetEventBook(ctx, req.(*Query))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventQueryService_GetEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Query)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EventQueryServiceServer).GetEvents(m, &grpc.GenericServerStream[Query, EventBook]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type EventQueryService_GetEventsServer = grpc.ServerStreamingServer[EventBook]

// EventQueryService_ServiceDesc is the grpc.ServiceDesc for EventQueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EventQueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.EventQueryService",
	HandlerType: (*EventQueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEventBook",
			Handler:    _EventQueryService_GetEventBook_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetEvents",
			Handler:       _EventQueryService_GetEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "angzarr.proto",
}
