package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type KafkaClient struct {
	producer sarama.SyncProducer
	brokers  []string
}

type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func NewKafkaClient(brokers string) (*KafkaClient, error) {
	brokerList := strings.Split(brokers, ",")

	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	// Producer config - sync publishing with local ack is enough for
	// best-effort domain events
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaClient{
		producer: producer,
		brokers:  brokerList,
	}, nil
}

// Producer publishes a batch of messages to the given topic. Messages share
// one round trip; the whole batch fails together.
func (kc *KafkaClient) Producer(messages []Message, topic string) error {
	if len(messages) == 0 {
		return nil
	}

	producerMessages := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, msg := range messages {
		headers := make([]sarama.RecordHeader, 0, len(msg.Headers))
		for key, value := range msg.Headers {
			headers = append(headers, sarama.RecordHeader{
				Key:   []byte(key),
				Value: []byte(value),
			})
		}

		producerMessages = append(producerMessages, &sarama.ProducerMessage{
			Topic:   topic,
			Key:     sarama.StringEncoder(msg.Key),
			Value:   sarama.ByteEncoder(msg.Value),
			Headers: headers,
		})
	}

	if err := kc.producer.SendMessages(producerMessages); err != nil {
		return fmt.Errorf("failed to send messages to topic %s: %w", topic, err)
	}

	return nil
}

func (kc *KafkaClient) Close() error {
	return kc.producer.Close()
}
