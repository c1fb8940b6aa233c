package sqlinline

const QUpsertWeightEntry = `--sql d15c82f0-7a94-4b36-8e21-c90d4f7a35e8
insert into weight_progress (id, user_id, date, weight)
values ($1, $2, $3, $4)
on conflict (user_id, date) do update
set weight = excluded.weight
returning id, user_id, date, weight;
`

const QSelectWeightSince = `--sql 28e4a6b9-03cd-4715-9f82-6ad1c5e09b37
select id, user_id, date, weight
from weight_progress
where user_id = $1
  and date >= $2
order by date asc;
`
