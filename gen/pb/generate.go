package pb

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/Xausdorf/card-gateway --go-grpc_out=../.. --go-grpc_opt=module=github.com/Xausdorf/card-gateway paymentgateway/v1/payment_gateway.proto
