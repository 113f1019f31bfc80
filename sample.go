package main

// Sample status report as the producer emits it over its console, used by
// the self-check. Hand-authored to match the firmware's serializer output.
const sampleReport = `{
  "timestamp": 1234567890,
  "device": "DL-41181201189F",
  "mac_address": "41:18:12:01:18:9f",
  "daly_protocol": {
    "status": "characteristics_found",
    "notifications": "enabled",
    "commands": {
      "main_info": {
        "command_sent": "D2030000003ED7B9",
        "response_received": true,
        "response_data": "d2037c0cf60cf60cf60cf70cf50cf60cf60cf60cf60cf50cf30cf60cf60cf60cf60cf4",
        "parsed_data": {
          "header": {
            "startByte": "0xD2",
            "commandId": "0x03",
            "dataLength": 124
          },
          "cellVoltages": [
            {"cellNumber": 1, "voltage": 3.318},
            {"cellNumber": 2, "voltage": 3.318},
            {"cellNumber": 3, "voltage": 3.318},
            {"cellNumber": 4, "voltage": 3.319},
            {"cellNumber": 5, "voltage": 3.317},
            {"cellNumber": 6, "voltage": 3.318},
            {"cellNumber": 7, "voltage": 3.318},
            {"cellNumber": 8, "voltage": 3.318},
            {"cellNumber": 9, "voltage": 3.318},
            {"cellNumber": 10, "voltage": 3.317},
            {"cellNumber": 11, "voltage": 3.315},
            {"cellNumber": 12, "voltage": 3.318},
            {"cellNumber": 13, "voltage": 3.318},
            {"cellNumber": 14, "voltage": 3.318},
            {"cellNumber": 15, "voltage": 3.318},
            {"cellNumber": 16, "voltage": 3.316}
          ],
          "packVoltage": 53.080,
          "current": 0.0,
          "soc": 90.4,
          "remainingCapacity": 207.9,
          "totalCapacity": 230,
          "cycles": 1,
          "temperatures": [
            {"sensor": "T1", "temperature": 30},
            {"sensor": "T2", "temperature": 30}
          ],
          "mosStatus": {
            "chargingMos": true,
            "dischargingMos": true,
            "balancing": false
          },
          "checksum": "0x2C73",
          "timestamp": "1234567890"
        }
      }
    }
  },
  "data_found": true
}`

// Sample payload line as it appears among the producer's console output.
const samplePrefixedLine = `BMS_DATA:{"timestamp":1234567890,"device":"DL-41181201189F","data_found":true}`
