package stream

import (
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const deliveryTimeout = 5 * time.Second

type KafkaStream struct {
	kafkaServers string

	mu       sync.Mutex
	producer *kafka.Producer
}

func New(kafkaServers string) *KafkaStream {
	return &KafkaStream{
		kafkaServers: kafkaServers,
	}
}

func (st *KafkaStream) getProducer() (*kafka.Producer, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.producer == nil {
		producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": st.kafkaServers})
		if err != nil {
			return nil, err
		}
		st.producer = producer
	}
	return st.producer, nil
}

// ProduceMessage publishes value on topic and waits for the delivery report.
func (st *KafkaStream) ProduceMessage(topic, key string, value []byte) error {
	producer, err := st.getProducer()
	if err != nil {
		return err
	}

	delivery := make(chan kafka.Event, 1)
	err = producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          value,
	}, delivery)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	select {
	case e := <-delivery:
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", topic, m.TopicPartition.Error)
		}
		return nil
	case <-time.After(deliveryTimeout):
		return fmt.Errorf("deliver to %s: timed out", topic)
	}
}

// Close flushes pending messages and releases the producer.
func (st *KafkaStream) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.producer != nil {
		st.producer.Flush(int(deliveryTimeout / time.Millisecond))
		st.producer.Close()
		st.producer = nil
	}
}

type StreamConsumer struct {
	GroupId string
	Topic   string
}

func (st *KafkaStream) CreateConsumer(consumerStruct *StreamConsumer) (*kafka.Consumer, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": st.kafkaServers,
		"group.id":          consumerStruct.GroupId,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}

	if err := consumer.Subscribe(consumerStruct.Topic, nil); err != nil {
		consumer.Close()
		return nil, err
	}

	return consumer, nil
}
