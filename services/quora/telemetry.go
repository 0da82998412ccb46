package quora

import (
	"quoraprofiler-backend/lib/restyutil"
	"quoraprofiler-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("quoraprofiler.services.quora")

func (s Service) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(s.client.http, tracer, out)
}
